// Package control handles the controller command protocol.
package control

// Message types accepted from the controller.
const (
	MsgMove         = "move"
	MsgKeyDown      = "keyDown"
	MsgKeyUp        = "keyUp"
	MsgKeyPress     = "keyPress"
	MsgClick        = "click"
	MsgBind         = "bind"
	MsgDelivery     = "delivery"
	MsgInputEnabled = "inputEnabled"
	MsgState        = "state"
)

// Message is a controller payload.
type Message struct {
	T       string `json:"t"`
	Dir     string `json:"dir,omitempty"`
	Key     string `json:"key,omitempty"`
	Button  string `json:"button,omitempty"`
	Name    string `json:"name,omitempty"`
	Post    *bool  `json:"post,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// MoveState mirrors the held movement keys.
type MoveState struct {
	Forward  bool `json:"forward"`
	Backward bool `json:"backward"`
	Left     bool `json:"left"`
	Right    bool `json:"right"`
}

// Reply is sent back to the controller for state requests and rejected commands.
type Reply struct {
	T            string     `json:"t"`
	Attached     bool       `json:"attached"`
	Post         bool       `json:"post"`
	InputEnabled bool       `json:"inputEnabled"`
	Move         *MoveState `json:"move,omitempty"`
	Error        string     `json:"error,omitempty"`
}
