package response

type Success struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id,omitempty" example:"R-3f0e5c7a-8c1d-4b9e-a1f2-6d7e8f901234"`
}

type Healthcheck struct {
	Status string `json:"status" example:"ok"`
}
