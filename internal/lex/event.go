// internal/lex/event.go
package lex

// Event is the Lex V1 code hook input. Slots use *string so an unfilled
// slot (null) stays distinguishable from an empty string.
type Event struct {
	MessageVersion    string            `json:"messageVersion,omitempty"`
	InvocationSource  string            `json:"invocationSource,omitempty"`
	UserID            string            `json:"userId"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	Bot               Bot               `json:"bot"`
	CurrentIntent     CurrentIntent     `json:"currentIntent"`
}

type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"`
	Version string `json:"version,omitempty"`
}

type CurrentIntent struct {
	Name               string             `json:"name"`
	Slots              map[string]*string `json:"slots"`
	ConfirmationStatus string             `json:"confirmationStatus,omitempty"`
}

// Slot returns the value of the named slot, nil when the slot is absent
// or present but unfilled.
func (e *Event) Slot(name string) *string {
	if e.CurrentIntent.Slots == nil {
		return nil
	}
	return e.CurrentIntent.Slots[name]
}

// OutputSessionAttributes returns the attributes to echo back: the inbound
// map as-is, or an empty map when the platform sent none.
func (e *Event) OutputSessionAttributes() map[string]string {
	if e.SessionAttributes == nil {
		return map[string]string{}
	}
	return e.SessionAttributes
}
