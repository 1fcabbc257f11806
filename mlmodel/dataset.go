package mlmodel

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
)

// Record is one logged study session: the features and target the
// regression trains on, plus how the session was tracked.
type Record struct {
	Subject    string
	Difficulty float64 // 1-10 scale
	Hours      float64
	Grade      float64 // 1-10 scale
	Session    string  // config.SessionManual | config.SessionPomodoro
}

var csvHeader = []string{"Materia", "Dificultad_Escala", "Horas_Estudio_Total", "Calificacion", "Tipo_Sesion"}

// seedRecords bootstrap the history file on first run so the model has
// something to warm up on.
var seedRecords = []Record{
	{Subject: "ML", Difficulty: 8, Hours: 5.0, Grade: 9, Session: config.SessionManual},
	{Subject: "Tesis", Difficulty: 9, Hours: 10.0, Grade: 7, Session: config.SessionManual},
	{Subject: "Comunicaciones", Difficulty: 4, Hours: 2.0, Grade: 10, Session: config.SessionManual},
	{Subject: "ML", Difficulty: 7, Hours: 6.5, Grade: 8, Session: config.SessionManual},
}

// LoadRecords reads the study history CSV, creating and seeding it when
// absent.
func (m *Model) LoadRecords() ([]Record, error) {
	data, err := os.ReadFile(m.csvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := m.writeRecords(seedRecords); err != nil {
				return nil, err
			}
			return append([]Record(nil), seedRecords...), nil
		}
		return nil, fmt.Errorf("failed to read study history: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse study history: %w", err)
	}

	var records []Record
	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue // header or malformed row
		}
		rec := Record{Subject: row[0], Session: config.SessionManual}
		rec.Difficulty, _ = strconv.ParseFloat(row[1], 64)
		rec.Hours, _ = strconv.ParseFloat(row[2], 64)
		rec.Grade, _ = strconv.ParseFloat(row[3], 64)
		if len(row) > 4 && row[4] != "" {
			rec.Session = row[4]
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append adds a session to the history file.
func (m *Model) Append(rec Record) error {
	records, err := m.LoadRecords()
	if err != nil {
		return err
	}
	return m.writeRecords(append(records, rec))
}

func (m *Model) writeRecords(records []Record) error {
	f, err := os.Create(m.csvPath)
	if err != nil {
		return fmt.Errorf("failed to write study history: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write study history: %w", err)
	}
	for _, rec := range records {
		session := rec.Session
		if session == "" {
			session = config.SessionManual
		}
		row := []string{
			rec.Subject,
			strconv.FormatFloat(rec.Difficulty, 'g', -1, 64),
			strconv.FormatFloat(rec.Hours, 'g', -1, 64),
			strconv.FormatFloat(rec.Grade, 'g', -1, 64),
			session,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write study history: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
