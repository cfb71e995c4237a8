package entities

// IntentKind is an outbound request the transport must deliver.
type IntentKind string

const (
	IntentSendText       IntentKind = "send_text"
	IntentSendPhoto      IntentKind = "send_photo"
	IntentSendPhotoAlbum IntentKind = "send_photo_album"
	IntentEditLast       IntentKind = "edit_last_message"
	IntentDeleteMessage  IntentKind = "delete_message"
	IntentAlert          IntentKind = "answer_callback"
)

// MessageRefTrigger points at the message that carried the button being handled.
const MessageRefTrigger = "trigger"

type Button struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

type AlbumItem struct {
	PhotoRef string `json:"photo_ref"`
	Caption  string `json:"caption"`
}

// Intent is a transport-agnostic delivery request. Only the fields relevant to
// Kind are populated.
type Intent struct {
	Kind       IntentKind  `json:"kind"`
	TargetID   string      `json:"target_id"`
	Text       string      `json:"text,omitempty"`
	PhotoRef   string      `json:"photo_ref,omitempty"`
	Album      []AlbumItem `json:"album,omitempty"`
	Buttons    [][]Button  `json:"buttons,omitempty"`
	MessageRef string      `json:"message_ref,omitempty"`
}

func SendText(target, text string) Intent {
	return Intent{Kind: IntentSendText, TargetID: target, Text: text}
}

func SendPhoto(target, photoRef, caption string, buttons [][]Button) Intent {
	return Intent{Kind: IntentSendPhoto, TargetID: target, PhotoRef: photoRef, Text: caption, Buttons: buttons}
}

func EditLast(target, text string, buttons [][]Button) Intent {
	return Intent{Kind: IntentEditLast, TargetID: target, Text: text, Buttons: buttons}
}

func Alert(target, text string) Intent {
	return Intent{Kind: IntentAlert, TargetID: target, Text: text}
}
