package state

import (
	"strings"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

// JobsFilter is the client-side filter state for the jobs snapshot. Filtering
// runs locally over the full snapshot; only candidates filter server-side.
type JobsFilter struct {
	Search   string
	Status   string
	Type     string
	Archived bool
	Page     int
}

// FilterJobs applies the filter to a snapshot. The archived toggle selects
// either archived or non-archived jobs, never both. Search matches title,
// company or location case-insensitively; status and type match exactly
// unless set to "all" or left empty.
func FilterJobs(jobs []model.Job, f JobsFilter) []model.Job {
	search := strings.ToLower(f.Search)

	out := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Archived != f.Archived {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(job.Title), search) &&
			!strings.Contains(strings.ToLower(job.Company), search) &&
			!strings.Contains(strings.ToLower(job.Location), search) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(job.Status) != f.Status {
			continue
		}
		if f.Type != "" && f.Type != "all" && string(job.Type) != f.Type {
			continue
		}
		out = append(out, job)
	}
	return out
}

// Paginate slices one page out of a filtered list and reports the total page
// count. Pages are 1-based; an out-of-range page yields an empty slice.
func Paginate(jobs []model.Job, page, perPage int) ([]model.Job, int) {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(jobs) + perPage - 1) / perPage
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(jobs) {
		start = len(jobs)
	}
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end], totalPages
}
