package builder

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"formforge/internal/model"
)

// Nested collection names accepted by Apply. Which ones are legal depends on
// the question's variant: categories and items belong to categorize, blanks to
// cloze, questions and options to comprehension.
const (
	ListCategories = "categories"
	ListItems      = "items"
	ListBlanks     = "blanks"
	ListQuestions  = "questions"
	ListOptions    = "options"
)

// Entry ops
const (
	OpAppend  = "append"
	OpRemove  = "remove"
	OpEdit    = "edit"
	OpReorder = "reorder"
)

// EntryPatch is the superset of editable fields across all nested entry
// shapes; nil fields are left untouched. Key/ID/QID edits are uniqued against
// sibling entries. Options replaces a sub-question's whole option list.
type EntryPatch struct {
	Key                *string                `json:"key,omitempty"`
	ID                 *string                `json:"id,omitempty"`
	QID                *string                `json:"qid,omitempty"`
	Label              *string                `json:"label,omitempty"`
	CorrectCategoryKey *string                `json:"correctCategoryKey,omitempty"`
	Answer             *string                `json:"answer,omitempty"`
	QuestionText       *string                `json:"questionText,omitempty"`
	Kind               *model.SubQuestionKind `json:"kind,omitempty"`
	Options            *[]string              `json:"options,omitempty"`
	Option             *string                `json:"option,omitempty"`
}

// EntryOp is one mutation of a nested ordered collection. Remove and edit are
// keyed by the entry's stable id (category key, item id, blank key,
// sub-question qid), resolved to its current index at apply time, so an edit
// issued against a since-reordered list still lands on the intended entry.
// The options list is the exception: options carry no stable id, so its ops
// are addressed by the owning sub-question's qid in Key plus a positional
// index in From (Patch.Option holds an edit's replacement value).
type EntryOp struct {
	List  string     `json:"list"`
	Op    string     `json:"op"`
	Key   string     `json:"key,omitempty"`
	From  int        `json:"from,omitempty"`
	To    int        `json:"to,omitempty"`
	Patch EntryPatch `json:"patch,omitempty"`
}

// Apply dispatches an entry op against the question's settings. An op naming a
// list the question's variant does not have, or an unknown op, is an error; a
// remove or edit whose key no longer exists is a silent no-op.
func Apply(q *model.Question, op EntryOp) error {
	switch op.List {
	case ListCategories:
		if q.Type != model.QuestionCategorize || q.Settings.Categorize == nil {
			return fmt.Errorf("list %q does not apply to a %s question", op.List, q.Type)
		}
		return applyCategories(q.Settings.Categorize, op)
	case ListItems:
		if q.Type != model.QuestionCategorize || q.Settings.Categorize == nil {
			return fmt.Errorf("list %q does not apply to a %s question", op.List, q.Type)
		}
		return applyItems(q.Settings.Categorize, op)
	case ListBlanks:
		if q.Type != model.QuestionCloze || q.Settings.Cloze == nil {
			return fmt.Errorf("list %q does not apply to a %s question", op.List, q.Type)
		}
		return applyBlanks(q.Settings.Cloze, op)
	case ListQuestions:
		if q.Type != model.QuestionComprehension || q.Settings.Comprehension == nil {
			return fmt.Errorf("list %q does not apply to a %s question", op.List, q.Type)
		}
		return applySubQuestions(q.Settings.Comprehension, op)
	case ListOptions:
		if q.Type != model.QuestionComprehension || q.Settings.Comprehension == nil {
			return fmt.Errorf("list %q does not apply to a %s question", op.List, q.Type)
		}
		return applyOptions(q.Settings.Comprehension, op)
	default:
		return fmt.Errorf("unknown list %q", op.List)
	}
}

func applyCategories(s *model.CategorizeSettings, op EntryOp) error {
	taken := func(k string) bool {
		for _, c := range s.Categories {
			if c.Key == k {
				return true
			}
		}
		return false
	}
	switch op.Op {
	case OpAppend:
		key := uniqueKey(fmt.Sprintf("cat%d", len(s.Categories)+1), taken)
		s.Categories = append(s.Categories, model.Category{Key: key, Label: "New Category"})
	case OpRemove:
		for i, c := range s.Categories {
			if c.Key == op.Key {
				s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
				break
			}
		}
	case OpEdit:
		for i := range s.Categories {
			if s.Categories[i].Key != op.Key {
				continue
			}
			if op.Patch.Key != nil && *op.Patch.Key != s.Categories[i].Key {
				s.Categories[i].Key = uniqueKey(*op.Patch.Key, taken)
			}
			if op.Patch.Label != nil {
				s.Categories[i].Label = *op.Patch.Label
			}
			break
		}
	case OpReorder:
		s.Categories = spliceMove(s.Categories, op.From, op.To)
	default:
		return fmt.Errorf("unknown entry op %q", op.Op)
	}
	return nil
}

func applyItems(s *model.CategorizeSettings, op EntryOp) error {
	taken := func(id string) bool {
		for _, it := range s.Items {
			if it.ID == id {
				return true
			}
		}
		return false
	}
	switch op.Op {
	case OpAppend:
		first := ""
		if len(s.Categories) > 0 {
			first = s.Categories[0].Key
		}
		id := uniqueKey(fmt.Sprintf("i%d", len(s.Items)+1), taken)
		s.Items = append(s.Items, model.CategorizeItem{ID: id, Label: "New Item", CorrectCategoryKey: first})
	case OpRemove:
		for i, it := range s.Items {
			if it.ID == op.Key {
				s.Items = append(s.Items[:i], s.Items[i+1:]...)
				break
			}
		}
	case OpEdit:
		for i := range s.Items {
			if s.Items[i].ID != op.Key {
				continue
			}
			if op.Patch.ID != nil && *op.Patch.ID != s.Items[i].ID {
				s.Items[i].ID = uniqueKey(*op.Patch.ID, taken)
			}
			if op.Patch.Label != nil {
				s.Items[i].Label = *op.Patch.Label
			}
			if op.Patch.CorrectCategoryKey != nil {
				s.Items[i].CorrectCategoryKey = *op.Patch.CorrectCategoryKey
			}
			break
		}
	case OpReorder:
		s.Items = spliceMove(s.Items, op.From, op.To)
	default:
		return fmt.Errorf("unknown entry op %q", op.Op)
	}
	return nil
}

func applyBlanks(s *model.ClozeSettings, op EntryOp) error {
	taken := func(k string) bool {
		for _, b := range s.Blanks {
			if b.Key == k {
				return true
			}
		}
		return false
	}
	switch op.Op {
	case OpAppend:
		key := uniqueKey(strconv.Itoa(len(s.Blanks)+1), taken)
		s.Blanks = append(s.Blanks, model.ClozeBlank{Key: key, Answer: "", Options: []string{}})
	case OpRemove:
		for i, b := range s.Blanks {
			if b.Key == op.Key {
				s.Blanks = append(s.Blanks[:i], s.Blanks[i+1:]...)
				break
			}
		}
	case OpEdit:
		for i := range s.Blanks {
			if s.Blanks[i].Key != op.Key {
				continue
			}
			if op.Patch.Key != nil && *op.Patch.Key != s.Blanks[i].Key {
				s.Blanks[i].Key = uniqueKey(*op.Patch.Key, taken)
			}
			if op.Patch.Answer != nil {
				s.Blanks[i].Answer = *op.Patch.Answer
			}
			if op.Patch.Options != nil {
				s.Blanks[i].Options = *op.Patch.Options
			}
			break
		}
	case OpReorder:
		s.Blanks = spliceMove(s.Blanks, op.From, op.To)
	default:
		return fmt.Errorf("unknown entry op %q", op.Op)
	}
	return nil
}

func applySubQuestions(s *model.ComprehensionSettings, op EntryOp) error {
	taken := func(qid string) bool {
		for _, sq := range s.Questions {
			if sq.QID == qid {
				return true
			}
		}
		return false
	}
	switch op.Op {
	case OpAppend:
		s.Questions = append(s.Questions, model.SubQuestion{
			QID:          uuid.NewString(),
			QuestionText: "New question",
			Kind:         model.SubQuestionMCQ,
			Options:      []string{"A", "B", "C", "D"},
		})
	case OpRemove:
		for i, sq := range s.Questions {
			if sq.QID == op.Key {
				s.Questions = append(s.Questions[:i], s.Questions[i+1:]...)
				break
			}
		}
	case OpEdit:
		for i := range s.Questions {
			if s.Questions[i].QID != op.Key {
				continue
			}
			if op.Patch.QID != nil && *op.Patch.QID != s.Questions[i].QID {
				s.Questions[i].QID = uniqueKey(*op.Patch.QID, taken)
			}
			if op.Patch.QuestionText != nil {
				s.Questions[i].QuestionText = *op.Patch.QuestionText
			}
			if op.Patch.Kind != nil {
				s.Questions[i].Kind = *op.Patch.Kind
			}
			if op.Patch.Options != nil {
				s.Questions[i].Options = *op.Patch.Options
			}
			break
		}
	case OpReorder:
		s.Questions = spliceMove(s.Questions, op.From, op.To)
	default:
		return fmt.Errorf("unknown entry op %q", op.Op)
	}
	return nil
}

func applyOptions(s *model.ComprehensionSettings, op EntryOp) error {
	switch op.Op {
	case OpAppend:
		AppendOption(s, op.Key)
	case OpRemove:
		RemoveOption(s, op.Key, op.From)
	case OpEdit:
		if op.Patch.Option != nil {
			EditOption(s, op.Key, op.From, *op.Patch.Option)
		}
	case OpReorder:
		ReorderOption(s, op.Key, op.From, op.To)
	default:
		return fmt.Errorf("unknown entry op %q", op.Op)
	}
	return nil
}

// AppendOption adds a placeholder option to an mcq sub-question; no-op if the
// sub-question is absent.
func AppendOption(s *model.ComprehensionSettings, qid string) {
	for i := range s.Questions {
		if s.Questions[i].QID == qid {
			s.Questions[i].Options = append(s.Questions[i].Options, "New option")
			return
		}
	}
}

// RemoveOption removes the option at idx from a sub-question; options carry no
// stable id, so this is positional. No-op if out of range.
func RemoveOption(s *model.ComprehensionSettings, qid string, idx int) {
	for i := range s.Questions {
		if s.Questions[i].QID != qid {
			continue
		}
		if idx < 0 || idx >= len(s.Questions[i].Options) {
			return
		}
		s.Questions[i].Options = append(s.Questions[i].Options[:idx], s.Questions[i].Options[idx+1:]...)
		return
	}
}

// EditOption replaces the option at idx; positional, no-op if out of range.
func EditOption(s *model.ComprehensionSettings, qid string, idx int, value string) {
	for i := range s.Questions {
		if s.Questions[i].QID != qid {
			continue
		}
		if idx < 0 || idx >= len(s.Questions[i].Options) {
			return
		}
		s.Questions[i].Options[idx] = value
		return
	}
}

// ReorderOption moves the option at from to to; positional, no-op if the
// sub-question is absent or either index is out of range.
func ReorderOption(s *model.ComprehensionSettings, qid string, from, to int) {
	for i := range s.Questions {
		if s.Questions[i].QID != qid {
			continue
		}
		s.Questions[i].Options = spliceMove(s.Questions[i].Options, from, to)
		return
	}
}

// uniqueKey returns base, suffixed with "-2", "-3", ... until it no longer
// collides with an existing sibling key.
func uniqueKey(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		k := fmt.Sprintf("%s-%d", base, n)
		if !taken(k) {
			return k
		}
	}
}
