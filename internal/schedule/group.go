package schedule

import (
	"sort"
	"strings"
	"time"
)

const (
	DefaultEnvironment = "未命名環境"
	DefaultPurpose     = "未指定目的"
	DefaultBatch       = "未指定梯次"
)

// Group collects the tasks of one environment batch
type Group struct {
	Environment string
	Batch       string
	Purpose     string
	Start       time.Time
	End         time.Time
	Tasks       []string
	Statuses    []string
}

// Days is the inclusive length of the group's date range
func (g Group) Days() int {
	if g.Start.IsZero() {
		return 0
	}
	return int(g.End.Sub(g.Start).Hours()/24) + 1
}

// Complete fills in what a record read from a foreign workbook may lack.
// It returns false when the record has neither environment nor task.
func Complete(r Record) (Record, bool) {
	env := strings.TrimSpace(r.Get(FieldEnvironment).String())
	task := strings.TrimSpace(r.Get(FieldTask).String())
	if env == "" && task == "" {
		return nil, false
	}

	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	// "環境：目的" packs the purpose into the environment cell
	if i := strings.IndexAny(env, "：:"); i >= 0 {
		purpose := strings.TrimSpace(strings.TrimLeft(env[i:], "：:"))
		env = strings.TrimSpace(env[:i])
		if purpose != "" && r.Get(FieldPurpose).IsEmpty() {
			out[FieldPurpose] = Text(purpose)
		}
	}

	if env == "" {
		env = DefaultEnvironment
	}
	if task == "" {
		task = env
	}
	out[FieldEnvironment] = Text(env)
	out[FieldTask] = Text(task)

	if out.Get(FieldPurpose).IsEmpty() {
		out[FieldPurpose] = Text(DefaultPurpose)
	}
	out[FieldStatus] = Text(NormalizeStatus(strings.TrimSpace(r.Get(FieldStatus).String())))

	return out, true
}

// GroupRecords groups records by environment and batch in first-seen order.
// A group's range spans the earliest start to the latest end; a missing end
// counts as the start date. The last non-default purpose seen wins.
func GroupRecords(records []Record) []Group {
	var groups []*Group
	index := make(map[string]*Group)

	for _, r := range records {
		env := r.Get(FieldEnvironment).String()
		batch := r.Get(FieldBatch).String()
		if batch == "" {
			batch = DefaultBatch
		}

		key := env + "\x00" + batch
		g, ok := index[key]
		if !ok {
			g = &Group{Environment: env, Batch: batch, Purpose: DefaultPurpose}
			index[key] = g
			groups = append(groups, g)
		}

		if purpose := r.Get(FieldPurpose).String(); purpose != "" && purpose != DefaultPurpose {
			g.Purpose = purpose
		}

		g.Tasks = append(g.Tasks, r.Get(FieldTask).String())

		status := NormalizeStatus(r.Get(FieldStatus).String())
		if !contains(g.Statuses, status) {
			g.Statuses = append(g.Statuses, status)
		}

		start, ok := r.Get(FieldStartDate).Time()
		if !ok {
			continue
		}
		end, ok := r.Get(FieldEndDate).Time()
		if !ok || end.Before(start) {
			end = start
		}
		if g.Start.IsZero() || start.Before(g.Start) {
			g.Start = start
		}
		if end.After(g.End) {
			g.End = end
		}
	}

	result := make([]Group, len(groups))
	for i, g := range groups {
		sort.SliceStable(g.Statuses, func(a, b int) bool {
			return StatusRank(g.Statuses[a]) < StatusRank(g.Statuses[b])
		})
		result[i] = *g
	}
	return result
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
