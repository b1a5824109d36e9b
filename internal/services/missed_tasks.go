package services

import "github.com/lotionhq/huddle/internal/models"

// GroupTasksByBucket indexes one bulk task fetch for in-memory lookup.
func GroupTasksByBucket(tasks []models.TaskDefinition) map[uint][]models.TaskDefinition {
	grouped := make(map[uint][]models.TaskDefinition, len(tasks))
	for _, task := range tasks {
		grouped[task.BucketID] = append(grouped[task.BucketID], task)
	}
	return grouped
}

// ComputeMissedTaskIDs derives the missed set from one day's assignments.
// A task counts as missed when its bucket had an assignee that day and no
// progress row reached DONE. Unassigned buckets contribute nothing: no one
// was responsible for them.
func ComputeMissedTaskIDs(assignments []models.Assignment, tasksByBucket map[uint][]models.TaskDefinition) []uint {
	missed := make([]uint, 0)
	for _, assignment := range assignments {
		if assignment.UserID == nil {
			continue
		}

		progressByTask := make(map[uint]models.TaskProgress, len(assignment.TaskProgress))
		for _, progress := range assignment.TaskProgress {
			progressByTask[progress.TaskDefinitionID] = progress
		}

		for _, task := range tasksByBucket[assignment.BucketID] {
			progress, recorded := progressByTask[task.ID]
			if !recorded || progress.Status != models.StatusDone {
				missed = append(missed, task.ID)
			}
		}
	}
	return missed
}

// AssignedBucketIDs collects the bucket ids that had an assignee, feeding the
// single bulk task query the missed computation runs on.
func AssignedBucketIDs(assignments []models.Assignment) []uint {
	bucketIDs := make([]uint, 0, len(assignments))
	for _, assignment := range assignments {
		if assignment.UserID != nil {
			bucketIDs = append(bucketIDs, assignment.BucketID)
		}
	}
	return bucketIDs
}
