package domain

// CallStage is the position of a voice call in the flow. The stage is the
// only mutable per-call state and is discarded when the call ends.
type CallStage string

const (
	StageGreeting   CallStage = "greeting"
	StageListening  CallStage = "listening"
	StageResponding CallStage = "responding"
	StageFollowUp   CallStage = "follow_up"
	StageGoodbye    CallStage = "goodbye"
	StageEscalated  CallStage = "escalated"
	StageVoicemail  CallStage = "voicemail"
)
