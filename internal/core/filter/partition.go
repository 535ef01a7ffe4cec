package filter

import "github.com/colonyops/rtm2ics/internal/core/rtm"

// Group is the ordered set of tasks bound for one destination.
type Group struct {
	Key   rtm.ID
	Tasks []rtm.Task
}

// Result is the outcome of Partition.
type Result struct {
	// Groups are ordered by the first appearance of their key.
	Groups []Group
	// Filtered counts tasks rejected by the predicate.
	Filtered int
}

// Included returns the number of tasks across all groups.
func (r Result) Included() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Tasks)
	}
	return n
}

// Partition applies include to every task and groups the survivors by key.
// The partition is stable: tasks keep their input order inside each group. A
// nil include keeps every task.
func Partition(tasks []rtm.Task, include func(rtm.Task) bool, key func(rtm.Task) rtm.ID) Result {
	var (
		res   Result
		index = make(map[rtm.ID]int)
	)

	for _, t := range tasks {
		if include != nil && !include(t) {
			res.Filtered++
			continue
		}

		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(res.Groups)
			index[k] = i
			res.Groups = append(res.Groups, Group{Key: k})
		}
		res.Groups[i].Tasks = append(res.Groups[i].Tasks, t)
	}

	return res
}

// ByList keys tasks by their list id.
func ByList(t rtm.Task) rtm.ID { return t.ListID }

// Single keys every task to the same group.
func Single(rtm.Task) rtm.ID { return "" }
