package models

// Answer sources reported by the backend in [ChatResponse.AnswerSource].
const (
	AnswerSourceKnowledgeBase = "knowledge_base"
	AnswerSourceGeneralAI     = "general_ai"
	AnswerSourceWebSearch     = "web_search"
	AnswerSourceError         = "error"
)

// MaxChatMessageLength is the longest user message the backend accepts,
// counted in characters.
const MaxChatMessageLength = 500

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	// Message is the user question. Required.
	Message string `json:"message"`

	// SessionID groups turns of one conversation. When empty the backend
	// starts a new session and returns its id.
	SessionID string `json:"session_id,omitempty"`

	// UserID optionally identifies the asking user.
	UserID string `json:"user_id,omitempty"`
}

// ChatSource is one knowledge-base entry or web page the answer was built
// from. Knowledge-base sources carry ID and Question, web sources carry
// Title and URL.
type ChatSource struct {
	ID         int64   `json:"id,omitempty"`
	Question   string  `json:"question,omitempty"`
	Title      string  `json:"title,omitempty"`
	URL        string  `json:"url,omitempty"`
	Similarity float64 `json:"similarity"`
}

// ChatResponse is the payload of a successful POST /chat.
type ChatResponse struct {
	SessionID        string       `json:"session_id"`
	Answer           string       `json:"answer"`
	Confidence       float64      `json:"confidence"`
	Sources          []ChatSource `json:"sources"`
	RelatedQuestions []string     `json:"related_questions"`
	Intent           *string      `json:"intent,omitempty"`
	AnswerSource     string       `json:"answer_source"`
}

// TopKnowledgeID returns the id of the first knowledge-base source, if any.
func (r ChatResponse) TopKnowledgeID() *int64 {
	for _, s := range r.Sources {
		if s.ID > 0 {
			id := s.ID
			return &id
		}
	}
	return nil
}
