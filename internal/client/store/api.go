package store

import (
	"context"
	"net/http"
	"time"

	"animal-tracker/internal/domain/animals"
	"animal-tracker/internal/platform/httpclient"
)

// API es el contrato del servidor que consume el Store.
type API interface {
	List(ctx context.Context) ([]animals.Record, error)
	Create(ctx context.Context, rec animals.Record) (string, error)
	Update(ctx context.Context, rec animals.Record) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

const animalsPath = "/animals"

// HTTPAPI habla con /animals vía httpclient.
type HTTPAPI struct {
	c *httpclient.Client
}

// NewHTTPAPI crea el cliente apuntando a baseURL (p.ej. http://localhost:8000).
func NewHTTPAPI(baseURL string, timeout time.Duration) (*HTTPAPI, error) {
	c, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &HTTPAPI{c: c}, nil
}

func (a *HTTPAPI) List(ctx context.Context) ([]animals.Record, error) {
	var out struct {
		Data []animals.Record `json:"data"`
	}
	if err := a.c.DoJSON(ctx, http.MethodGet, animalsPath, nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []animals.Record{}
	}
	return out.Data, nil
}

func (a *HTTPAPI) Create(ctx context.Context, rec animals.Record) (string, error) {
	// el id lo asigna el servidor
	rec.ID = ""
	var out struct {
		ID string `json:"id"`
	}
	if err := a.c.DoJSON(ctx, http.MethodPost, animalsPath, rec, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (a *HTTPAPI) Update(ctx context.Context, rec animals.Record) (int64, error) {
	var out struct {
		Changes int64 `json:"changes"`
	}
	if err := a.c.DoJSON(ctx, http.MethodPut, animalsPath, rec, &out); err != nil {
		return 0, err
	}
	return out.Changes, nil
}

func (a *HTTPAPI) Delete(ctx context.Context, id string) (int64, error) {
	var out struct {
		Changes int64 `json:"changes"`
	}
	in := map[string]string{"id": id}
	if err := a.c.DoJSON(ctx, http.MethodDelete, animalsPath, in, &out); err != nil {
		return 0, err
	}
	return out.Changes, nil
}
