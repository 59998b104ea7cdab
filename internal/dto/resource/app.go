package resource

import (
	"time"
)

type AppResource struct {
	App     string    `json:"app"`
	Env     string    `json:"env"`
	Version string    `json:"version"`
	APIBase string    `json:"api_base"`
	Time    time.Time `json:"time"`
}
