package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/models"
	"github.com/conquiguias/conquiguias-api/internal/store"
)

var (
	ErrFormExists   = errors.New("form id already exists")
	ErrFormNotFound = errors.New("form not found")
)

const (
	formsPath = "data/formularios.json"

	// Forms created without a closing date close 70 minutes later.
	defaultCloseAfter = 70 * time.Minute

	// Forms expire 90 days after creation.
	formTTL = 90 * 24 * time.Hour
)

// FormInput is an inbound form definition before server fields are set.
type FormInput struct {
	Titulo             string
	FechaCierre        string
	Evaluation         []json.RawMessage
	ImagenEspecialidad *string
	ImagenFirma1       *string
	ImagenFirma2       *string
	ImagenFirma3       *string
}

type FormService struct {
	store       store.Store
	evaluations *EvaluationService
	attendance  *AttendanceService
	now         func() time.Time
}

func NewFormService(st store.Store, evaluations *EvaluationService, attendance *AttendanceService) *FormService {
	return &FormService{store: st, evaluations: evaluations, attendance: attendance, now: time.Now}
}

// Create inserts a new definition into the shared forms document. The id
// must be unused. When an evaluation payload is supplied it is written as
// a best-effort secondary step: its failure never rolls back the form.
func (s *FormService) Create(ctx context.Context, id string, in FormInput) (*models.FormDefinition, error) {
	forms, version, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := forms[id]; exists {
		return nil, ErrFormExists
	}

	now := s.now().UTC()
	cierre := in.FechaCierre
	if cierre == "" {
		cierre = now.Add(defaultCloseAfter).Format(time.RFC3339)
	}

	def := models.FormDefinition{
		Titulo:             in.Titulo,
		FechaCierre:        cierre,
		Creado:             now.Format(time.RFC3339),
		TieneEvaluacion:    len(in.Evaluation) > 0,
		ImagenEspecialidad: in.ImagenEspecialidad,
		ImagenFirma1:       in.ImagenFirma1,
		ImagenFirma2:       in.ImagenFirma2,
		ImagenFirma3:       in.ImagenFirma3,
	}
	forms[id] = def

	if _, err := s.store.PutJSON(ctx, formsPath, forms, version, "Formulario creado: "+id); err != nil {
		return nil, err
	}

	if len(in.Evaluation) > 0 {
		if err := s.evaluations.Save(ctx, id, in.Evaluation); err != nil {
			log.Printf("formulario %s creado pero no se pudo guardar la evaluación: %v", id, err)
		}
	}
	return &def, nil
}

// Get returns one definition with its computed state and image fields
// defaulted to null.
func (s *FormService) Get(ctx context.Context, id string) (*models.Form, error) {
	forms, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	def, ok := forms[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	return &models.Form{FormDefinition: def, Estado: def.EstadoAt(s.now())}, nil
}

// List returns the entire forms mapping. An absent document means no
// forms have been created yet.
func (s *FormService) List(ctx context.Context) (map[string]models.FormDefinition, error) {
	forms, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return forms, nil
}

// PurgeExpired drops every form older than the retention window and
// best-effort deletes each purged event's attendance document. The forms
// mapping is the source of truth; attendance deletions that fail are only
// logged. Returns the purged ids sorted, empty when nothing expired.
func (s *FormService) PurgeExpired(ctx context.Context, now time.Time) ([]string, error) {
	forms, version, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	vigentes := make(map[string]models.FormDefinition, len(forms))
	var vencidos []string
	for id, def := range forms {
		if s.expired(def, now) {
			vencidos = append(vencidos, id)
		} else {
			vigentes[id] = def
		}
	}

	if len(vencidos) == 0 {
		return []string{}, nil
	}
	sort.Strings(vencidos)

	message := fmt.Sprintf("Eliminar formularios vencidos (%s)", strings.Join(vencidos, ", "))
	if _, err := s.store.PutJSON(ctx, formsPath, vigentes, version, message); err != nil {
		return nil, err
	}

	for _, id := range vencidos {
		if err := s.attendance.DeleteEvent(ctx, id); err != nil {
			log.Printf("no se pudieron eliminar las respuestas del formulario vencido %s: %v", id, err)
		}
	}
	return vencidos, nil
}

// expired applies the retention rule to the creation timestamp, falling
// back to the closing timestamp for definitions predating the creado field.
func (s *FormService) expired(def models.FormDefinition, now time.Time) bool {
	created, err := time.Parse(time.RFC3339, def.Creado)
	if err != nil {
		created, err = time.Parse(time.RFC3339, def.FechaCierre)
		if err != nil {
			return false
		}
	}
	return now.Sub(created) >= formTTL
}

func (s *FormService) load(ctx context.Context) (map[string]models.FormDefinition, store.Version, error) {
	doc, err := s.store.Get(ctx, formsPath)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return map[string]models.FormDefinition{}, "", nil
		}
		return nil, "", err
	}

	var forms map[string]models.FormDefinition
	if err := json.Unmarshal(doc.Content, &forms); err != nil {
		return nil, "", fmt.Errorf("corrupt forms document: %w", err)
	}
	if forms == nil {
		forms = map[string]models.FormDefinition{}
	}
	return forms, doc.Version, nil
}
