package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount registers the authenticated project and task routes on r under
// /api. authenticate wraps every route in the group.
func Mount(r chi.Router, projects *ProjectHandler, tasks *TaskHandler, authenticate func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/projects", projects.CreateProject)
		r.Route("/projects/{id}", func(r chi.Router) {
			r.Get("/", projects.GetProject)
			r.Post("/tasks", projects.CreateTask)
			r.Get("/tasks", projects.ListTasks)
			r.Get("/activity", projects.ListActivity)
		})

		r.Route("/tasks/{id}", func(r chi.Router) {
			r.Get("/", tasks.GetTask)
			r.Post("/assign", tasks.AssignTask)
			r.Post("/complete", tasks.CompleteTask)
			r.Get("/activity", tasks.ListActivity)
		})
	})
}
