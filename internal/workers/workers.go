package workers

import "github.com/thejerf/suture/v4"

// Workers is the set of background workers started with the server.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// AddTo registers every worker with sup, in order.
func (w *Workers) AddTo(sup *suture.Supervisor) {
	for _, worker := range w.workers {
		sup.Add(worker)
	}
}

// Names returns the names of the workers, in order.
func (w *Workers) Names() []string {
	names := make([]string, 0, len(w.workers))
	for _, worker := range w.workers {
		names = append(names, worker.String())
	}
	return names
}
