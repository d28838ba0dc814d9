// internal/lex/card.go
package lex

const (
	cardContentType = "application/vnd.amazonaws.card.generic"
	maxCardButtons  = 5
)

type ResponseCard struct {
	ContentType        string              `json:"contentType"`
	Version            int                 `json:"version"`
	GenericAttachments []GenericAttachment `json:"genericAttachments"`
}

type GenericAttachment struct {
	Title    string   `json:"title"`
	SubTitle string   `json:"subTitle"`
	Buttons  []Button `json:"buttons"`
}

type Button struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// BuildResponseCard builds a generic card presenting up to five options as
// buttons, first five in input order. With no options the attachment
// carries null buttons, which suppresses card rendering on the client.
func BuildResponseCard(title, subTitle string, options []Button) *ResponseCard {
	var buttons []Button
	if len(options) > 0 {
		n := len(options)
		if n > maxCardButtons {
			n = maxCardButtons
		}
		buttons = make([]Button, n)
		copy(buttons, options[:n])
	}

	return &ResponseCard{
		ContentType: cardContentType,
		Version:     1,
		GenericAttachments: []GenericAttachment{{
			Title:    title,
			SubTitle: subTitle,
			Buttons:  buttons,
		}},
	}
}
