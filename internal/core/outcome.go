package core

import "github.com/inovacc/ghexplorer/internal/model"

// AddOutcome tells which entry a successful add touched.
type AddOutcome struct {
	Project  model.Project
	Replaced bool
}

func (o AddOutcome) String() string {
	if o.Replaced {
		return "Updated " + o.Project.FullName
	}

	return "Added " + o.Project.FullName
}

// DescribeAdd compares the lists before and after a successful add of query.
// A longer list means the last entry was appended; otherwise the entry that
// changed (or, if the data was identical, the one matching query) was
// replaced in place.
func DescribeAdd(before, after []model.Project, query string) AddOutcome {
	if len(after) > len(before) {
		return AddOutcome{Project: after[len(after)-1]}
	}

	for i := range after {
		if i < len(before) && after[i] != before[i] {
			return AddOutcome{Project: after[i], Replaced: true}
		}
	}

	q := NormalizeQuery(query)
	if i := indexOf(after, q); i >= 0 {
		return AddOutcome{Project: after[i], Replaced: true}
	}

	return AddOutcome{Project: model.Project{FullName: q}, Replaced: true}
}
