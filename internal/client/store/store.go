// Package store mantiene el estado del cliente: la lista cacheada, el modo
// edición y la búsqueda. Cada mutación recarga la lista completa del servidor.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"animal-tracker/internal/domain/animals"
)

var (
	// ErrBusy: ya hay una mutación (o su recarga) en vuelo.
	ErrBusy = errors.New("store: another operation is in progress")
	// ErrUnknownRecord: el id no está en la lista local.
	ErrUnknownRecord = errors.New("store: record not in local list")
	// ErrReloadFailed: no se pudo traer la lista. Tras una mutación significa
	// que el servidor ya la aplicó y solo falta refrescar la vista local.
	ErrReloadFailed = errors.New("store: list refresh failed")
)

const DefaultTimeout = 10 * time.Second

type Options struct {
	Timeout time.Duration // por llamada de red
	Logger  *zap.Logger
}

type Store struct {
	api     API
	timeout time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	records []animals.Record
	editID  string
	search  string
	busy    bool
}

func New(api API, opts Options) *Store {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Store{
		api:     api,
		timeout: opts.Timeout,
		log:     opts.Logger,
		records: []animals.Record{},
	}
}

// Reload reemplaza la cache local con la lista del servidor.
func (s *Store) Reload(ctx context.Context) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	return s.reload(ctx)
}

// Create envía rec y recarga. Devuelve el id asignado por el servidor, también
// cuando solo falla la recarga (error con ErrReloadFailed).
func (s *Store) Create(ctx context.Context, rec animals.Record) (string, error) {
	if err := s.acquire(); err != nil {
		return "", err
	}
	defer s.release()

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	id, err := s.api.Create(cctx, rec)
	cancel()
	if err != nil {
		s.log.Warn("create failed", zap.Error(err))
		return "", fmt.Errorf("create: %w", err)
	}
	return id, s.reload(ctx)
}

// Update reemplaza el registro rec.ID y recarga. Sale del modo edición.
func (s *Store) Update(ctx context.Context, rec animals.Record) (int64, error) {
	if strings.TrimSpace(rec.ID) == "" {
		return 0, animals.ErrMissingID
	}
	if err := s.acquire(); err != nil {
		return 0, err
	}
	defer s.release()

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	n, err := s.api.Update(cctx, rec)
	cancel()
	if err != nil {
		s.log.Warn("update failed", zap.String("id", rec.ID), zap.Error(err))
		return 0, fmt.Errorf("update: %w", err)
	}

	s.mu.Lock()
	if s.editID == rec.ID {
		s.editID = ""
	}
	s.mu.Unlock()

	return n, s.reload(ctx)
}

// Delete borra id y recarga. Si id era el registro en edición, sale del modo edición.
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, animals.ErrMissingID
	}
	if err := s.acquire(); err != nil {
		return 0, err
	}
	defer s.release()

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	n, err := s.api.Delete(cctx, id)
	cancel()
	if err != nil {
		s.log.Warn("delete failed", zap.String("id", id), zap.Error(err))
		return 0, fmt.Errorf("delete: %w", err)
	}

	s.mu.Lock()
	if s.editID == id {
		s.editID = ""
	}
	s.mu.Unlock()

	return n, s.reload(ctx)
}

// BeginEdit entra en modo edición sobre id y devuelve el registro para precargar el formulario.
func (s *Store) BeginEdit(id string) (animals.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.find(id)
	if !ok {
		return animals.Record{}, fmt.Errorf("%w: %s", ErrUnknownRecord, id)
	}
	s.editID = id
	return rec, nil
}

func (s *Store) CancelEdit() {
	s.mu.Lock()
	s.editID = ""
	s.mu.Unlock()
}

// EditID devuelve el id en edición, o "" si no hay edición.
func (s *Store) EditID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editID
}

// Editing devuelve el registro en edición tal como está en la lista local.
func (s *Store) Editing() (animals.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editID == "" {
		return animals.Record{}, false
	}
	return s.find(s.editID)
}

func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	s.search = term
	s.mu.Unlock()
}

func (s *Store) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Records devuelve una copia de la lista local.
func (s *Store) Records() []animals.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]animals.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Find(id string) (animals.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id)
}

// Busy indica si hay una operación en vuelo.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Store) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Store) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Store) reload(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.api.List(cctx)
	if err != nil {
		s.log.Warn("reload failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	if list == nil {
		list = []animals.Record{}
	}

	s.mu.Lock()
	s.records = list
	if s.editID != "" {
		if _, ok := s.find(s.editID); !ok {
			s.editID = ""
		}
	}
	s.mu.Unlock()
	return nil
}

// find asume s.mu tomado.
func (s *Store) find(id string) (animals.Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return animals.Record{}, false
}
