// Package signaling negotiates WebRTC data channels that carry controller commands.
package signaling

import (
	"fmt"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"
)

// PeerFactory creates peer connections sharing one configured API.
type PeerFactory struct {
	api    *webrtc.API
	config webrtc.Configuration
}

// NewPeerFactory initializes a WebRTC API with default codecs/interceptors.
func NewPeerFactory(iceServers ...string) (*PeerFactory, error) {
	media := &webrtc.MediaEngine{}
	if err := media.RegisterDefaultCodecs(); err != nil {
		return nil, fmt.Errorf("register codecs: %w", err)
	}

	interceptors := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(media, interceptors); err != nil {
		return nil, fmt.Errorf("register interceptors: %w", err)
	}

	api := webrtc.NewAPI(
		webrtc.WithMediaEngine(media),
		webrtc.WithInterceptorRegistry(interceptors),
	)

	config := webrtc.Configuration{}
	if len(iceServers) > 0 {
		config.ICEServers = []webrtc.ICEServer{{URLs: iceServers}}
	}
	return &PeerFactory{api: api, config: config}, nil
}

// NewPeer creates a new peer connection.
func (f *PeerFactory) NewPeer() (*webrtc.PeerConnection, error) {
	return f.api.NewPeerConnection(f.config)
}
