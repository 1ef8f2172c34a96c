package service

import "strings"

// VoiceCommand is the routing decision for one spoken command.
type VoiceCommand struct {
	Action  string `json:"action"`            // navigate or speak
	URL     string `json:"url,omitempty"`     // set when Action is navigate
	Message string `json:"message,omitempty"` // set when Action is speak
}

// voiceRoutes is checked in order; the first keyword found in the command
// wins.
var voiceRoutes = []struct {
	keyword string
	url     string
}{
	{"dashboard", "/dashboard"},
	{"learn", "/learn"},
	{"mentors", "/mentors"},
	{"assessment", "/assessment"},
	{"logout", "/logout"},
}

type VoiceService struct{}

func NewVoiceService() *VoiceService {
	return &VoiceService{}
}

// Route matches the command case-insensitively against the fixed keyword
// list.
func (s *VoiceService) Route(command string) VoiceCommand {
	lowered := strings.ToLower(command)

	for _, route := range voiceRoutes {
		if strings.Contains(lowered, route.keyword) {
			return VoiceCommand{Action: "navigate", URL: route.url}
		}
	}

	return VoiceCommand{Action: "speak", Message: "I did not understand that command"}
}
