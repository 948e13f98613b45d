package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/models"
	"github.com/conquiguias/conquiguias-api/internal/store"
	"github.com/google/uuid"
)

// MaxCheckpoints is how many sequential attendance markers a participant
// can record per event.
const MaxCheckpoints = 3

var (
	ErrDuplicateAttendance = errors.New("attendance already registered for this checkpoint")
	ErrCheckpointRange     = errors.New("checkpoint number out of range")
)

// CheckpointOrderError reports an attempt to register checkpoint k before
// checkpoint k-1 exists for the participant.
type CheckpointOrderError struct {
	Required  int
	Requested int
}

func (e *CheckpointOrderError) Error() string {
	return fmt.Sprintf("debes completar la asistencia %d antes de registrar la %d", e.Required, e.Requested)
}

// AttendanceSubmission is one inbound checkpoint registration.
type AttendanceSubmission struct {
	VisitanteID      string
	Nombre           string
	Correo           string
	Edad             string
	Telefono         string
	Asociacion       string
	AsistenciaNumero int
}

type AttendanceService struct {
	store store.Store
	now   func() time.Time
}

func NewAttendanceService(st store.Store) *AttendanceService {
	return &AttendanceService{store: st, now: time.Now}
}

func attendancePath(eventID string) string {
	return fmt.Sprintf("respuestas/%s/respuestas.json", eventID)
}

// Submit appends one checkpoint record to the event's attendance document.
// The participant key is the visitanteId; one is assigned when the first
// checkpoint arrives without it. Checkpoint k requires records for 1..k-1.
func (s *AttendanceService) Submit(ctx context.Context, eventID string, sub AttendanceSubmission) (*models.AttendanceRecord, error) {
	if sub.AsistenciaNumero < 1 || sub.AsistenciaNumero > MaxCheckpoints {
		return nil, ErrCheckpointRange
	}

	records, version, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	visitanteID := sub.VisitanteID
	if visitanteID == "" {
		visitanteID = uuid.NewString()
	}

	previous := 0
	for _, r := range records {
		if r.VisitanteID != visitanteID {
			continue
		}
		if r.AsistenciaNumero == sub.AsistenciaNumero {
			return nil, ErrDuplicateAttendance
		}
		if r.AsistenciaNumero < sub.AsistenciaNumero {
			previous++
		}
	}
	if previous < sub.AsistenciaNumero-1 {
		return nil, &CheckpointOrderError{Required: sub.AsistenciaNumero - 1, Requested: sub.AsistenciaNumero}
	}

	record := s.buildRecord(eventID, visitanteID, sub)
	records = append(records, record)

	message := fmt.Sprintf("Asistencia %d de %s en %s", sub.AsistenciaNumero, visitanteID, eventID)
	if _, err := s.store.PutJSON(ctx, attendancePath(eventID), records, version, message); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *AttendanceService) buildRecord(eventID, visitanteID string, sub AttendanceSubmission) models.AttendanceRecord {
	fecha := s.now().UTC().Format(time.RFC3339)
	if sub.AsistenciaNumero == 1 {
		return models.AttendanceRecord{
			Nombre:           sub.Nombre,
			Correo:           sub.Correo,
			Edad:             sub.Edad,
			Telefono:         sub.Telefono,
			Asociacion:       sub.Asociacion,
			Fecha:            fecha,
			VisitanteID:      visitanteID,
			AsistenciaNumero: sub.AsistenciaNumero,
		}
	}
	// Later checkpoints only reference the participant.
	return models.AttendanceRecord{
		Nombre:           sub.Nombre,
		Fecha:            fecha,
		VisitanteID:      visitanteID,
		AsistenciaNumero: sub.AsistenciaNumero,
		EventoID:         eventID,
	}
}

// ByEvent returns every attendance record for the event. Absent or
// unreadable documents are a normal "no submissions yet" state.
func (s *AttendanceService) ByEvent(ctx context.Context, eventID string) ([]models.AttendanceRecord, error) {
	doc, err := s.store.Get(ctx, attendancePath(eventID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.AttendanceRecord{}, nil
		}
		return nil, err
	}

	var records []models.AttendanceRecord
	if err := json.Unmarshal(doc.Content, &records); err != nil {
		return []models.AttendanceRecord{}, nil
	}
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return records, nil
}

// ByEmail filters one participant's records by correo, for the legacy
// per-participant lookup.
func (s *AttendanceService) ByEmail(ctx context.Context, eventID, correo string) ([]models.AttendanceRecord, error) {
	records, err := s.ByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	matched := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.Correo == correo {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// DeleteEvent removes the event's attendance document. A missing document
// is not an error; the expiry sweep calls this for events that may never
// have had submissions.
func (s *AttendanceService) DeleteEvent(ctx context.Context, eventID string) error {
	path := attendancePath(eventID)
	doc, err := s.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	message := fmt.Sprintf("Eliminar respuestas de formulario vencido %s", eventID)
	return s.store.Delete(ctx, path, doc.Version, message)
}

func (s *AttendanceService) load(ctx context.Context, eventID string) ([]models.AttendanceRecord, store.Version, error) {
	doc, err := s.store.Get(ctx, attendancePath(eventID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", nil
		}
		return nil, "", err
	}

	var records []models.AttendanceRecord
	if err := json.Unmarshal(doc.Content, &records); err != nil {
		return nil, "", fmt.Errorf("corrupt attendance document for %s: %w", eventID, err)
	}
	return records, doc.Version, nil
}
