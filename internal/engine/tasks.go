package engine

import "sort"

// reconcileTasks loads the completion set, clearing it first if the stored
// date-key is not today. The refreshed date-key is persisted before any
// result is returned, so a stale set can never be observed.
func (e *Engine) reconcileTasks() ([]string, error) {
	ids, dateKey, err := e.store.GetCompletedTasks()
	if err != nil {
		return nil, err
	}
	today := e.Today()
	if dateKey != today {
		ids = []string{}
		if err := e.store.SaveCompletedTasks(ids, today); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (e *Engine) completedSet() (map[string]bool, error) {
	ids, err := e.reconcileTasks()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// CompletedTasks returns today's completed task ids, sorted for stable
// output.
func (e *Engine) CompletedTasks() ([]string, error) {
	ids, err := e.reconcileTasks()
	if err != nil {
		return nil, err
	}
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return sorted, nil
}

// IsCompleted reports whether the task is completed today.
func (e *Engine) IsCompleted(taskID string) (bool, error) {
	set, err := e.completedSet()
	if err != nil {
		return false, err
	}
	return set[taskID], nil
}

// ToggleTask flips the completion state of a task. Completing is accepted
// only when gating permits it (or a cheat day is active); un-completing is
// always allowed, since gating blocks forward progress, never retraction.
// A gated attempt is silently rejected: changed is false and no state is
// touched. Callers are expected to have checked CanProceed and to surface
// their own message.
func (e *Engine) ToggleTask(taskID string) (changed bool, err error) {
	set, err := e.completedSet()
	if err != nil {
		return false, err
	}

	if !set[taskID] {
		ok, err := e.CanProceed(taskID)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if set[taskID] {
		delete(set, taskID)
	} else {
		set[taskID] = true
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if err := e.store.SaveCompletedTasks(ids, e.Today()); err != nil {
		return false, err
	}
	return true, nil
}
