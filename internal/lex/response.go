// internal/lex/response.go
package lex

// Dialog action types understood by the Lex V1 runtime.
const (
	ActionElicitSlot    = "ElicitSlot"
	ActionConfirmIntent = "ConfirmIntent"
	ActionClose         = "Close"
	ActionDelegate      = "Delegate"
)

// Fulfillment states for Close actions.
const (
	StateFulfilled = "Fulfilled"
	StateFailed    = "Failed"
)

const ContentTypePlainText = "PlainText"

// Response is the code hook output. SessionAttributes is always emitted,
// even when empty.
type Response struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

type DialogAction struct {
	Type             string             `json:"type"`
	IntentName       string             `json:"intentName,omitempty"`
	Slots            map[string]*string `json:"slots,omitempty"`
	SlotToElicit     string             `json:"slotToElicit,omitempty"`
	FulfillmentState string             `json:"fulfillmentState,omitempty"`
	Message          *Message           `json:"message,omitempty"`
	ResponseCard     *ResponseCard      `json:"responseCard,omitempty"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText builds a plain-text message.
func PlainText(content string) *Message {
	return &Message{ContentType: ContentTypePlainText, Content: content}
}

func sessionAttrs(attrs map[string]string) map[string]string {
	if attrs == nil {
		return map[string]string{}
	}
	return attrs
}

// ElicitSlot asks the user to fill slotToElicit on the given intent,
// carrying the current slot map forward unchanged.
func ElicitSlot(sessionAttributes map[string]string, intentName string, slots map[string]*string, slotToElicit string, message *Message) *Response {
	return &Response{
		SessionAttributes: sessionAttrs(sessionAttributes),
		DialogAction: DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// ConfirmIntent asks the user to confirm the given intent.
func ConfirmIntent(sessionAttributes map[string]string, intentName string, slots map[string]*string, message *Message) *Response {
	return &Response{
		SessionAttributes: sessionAttrs(sessionAttributes),
		DialogAction: DialogAction{
			Type:       ActionConfirmIntent,
			IntentName: intentName,
			Slots:      slots,
			Message:    message,
		},
	}
}

// Close ends the conversation with the given fulfillment state.
func Close(sessionAttributes map[string]string, fulfillmentState string, message *Message) *Response {
	return &Response{
		SessionAttributes: sessionAttrs(sessionAttributes),
		DialogAction: DialogAction{
			Type:             ActionClose,
			FulfillmentState: fulfillmentState,
			Message:          message,
		},
	}
}

// Delegate hands the next step back to Lex.
func Delegate(sessionAttributes map[string]string, slots map[string]*string) *Response {
	return &Response{
		SessionAttributes: sessionAttrs(sessionAttributes),
		DialogAction: DialogAction{
			Type:  ActionDelegate,
			Slots: slots,
		},
	}
}
