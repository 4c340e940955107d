package models

import "time"

// Knowledge statuses.
const (
	KnowledgeStatusDraft     = 0
	KnowledgeStatusPublished = 1
)

// Knowledge is a single question/answer pair stored in the knowledge base.
type Knowledge struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  *string   `json:"category,omitempty"`
	Keywords  []string  `json:"keywords,omitempty"`
	Source    *string   `json:"source,omitempty"`
	MilvusID  *int64    `json:"milvus_id,omitempty"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KnowledgeCreate is the body of POST /knowledge.
type KnowledgeCreate struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category *string  `json:"category,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Source   *string  `json:"source,omitempty"`
}

// KnowledgeUpdate is the body of PUT /knowledge/{id}.
// Only non-nil fields are sent, so the backend applies a partial update.
type KnowledgeUpdate struct {
	Question *string   `json:"question,omitempty"`
	Answer   *string   `json:"answer,omitempty"`
	Category *string   `json:"category,omitempty"`
	Keywords *[]string `json:"keywords,omitempty"`
	Status   *int      `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u KnowledgeUpdate) IsEmpty() bool {
	return u.Question == nil && u.Answer == nil && u.Category == nil && u.Keywords == nil && u.Status == nil
}

// KnowledgeListParams are the query parameters of GET /knowledge.
// Zero values are not sent and the backend defaults apply (skip=0, limit=20).
type KnowledgeListParams struct {
	Skip     int
	Limit    int
	Category string
}

// KnowledgeSearch is the keyword of GET /knowledge/search.
type KnowledgeSearch struct {
	Keyword string
}

// KnowledgeList is the payload of list and search calls.
type KnowledgeList struct {
	Items []Knowledge `json:"items"`
	Total int         `json:"total"`
}

// KnowledgeRef is the payload returned by create, update and delete.
type KnowledgeRef struct {
	ID int64 `json:"id"`
}
