package models

import "github.com/tusharoffice40/Whole-X/pkg/enums"

// ChatMessage is one entry in the advisory chat transcript.
type ChatMessage struct {
	Role enums.ChatRole `json:"role"`
	Text string         `json:"text"`
}
