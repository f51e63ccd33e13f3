package model

import "time"

// AnswerValue maps a sub-key to the respondent's value for it. The sub-key is
// the item id (categorize), blank key (cloze), or sub-question qid
// (comprehension).
type AnswerValue map[string]string

// SubmissionMeta records the submission context
type SubmissionMeta struct {
	UserAgent string `json:"userAgent" bson:"userAgent"`
	IP        string `json:"ip" bson:"ip"`
}

// FormResponse is one respondent's submission for a form. Responses are
// immutable after create; there is no update or delete path. Answer keys are
// stored as received, with no referential check against the live form.
type FormResponse struct {
	ID          string                 `json:"id" bson:"_id,omitempty"`
	FormID      string                 `json:"formId" bson:"formId"`
	Answers     map[string]AnswerValue `json:"answers" bson:"answers"`
	Meta        SubmissionMeta         `json:"meta" bson:"meta"`
	SubmittedAt time.Time              `json:"submittedAt" bson:"submittedAt"`
}
