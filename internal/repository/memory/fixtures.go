package memory

import (
	"time"

	"docsearch/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixtures returns a fresh copy of the baseline academic catalog used for
// development and browse-mode demos.
func Fixtures() []model.Document {
	return []model.Document{
		{
			ID:           "1",
			Title:        "Reglamento Académico 2024",
			Type:         model.TypeDOCX,
			SizeBytes:    2_300_000,
			LastModified: day(2024, time.March, 15),
			Content:      "Reglamento académico actualizado para el año lectivo 2024, incluyendo nuevas disposiciones para estudiantes de ingeniería de sistemas...",
			Locator:      "documents/reglamento-academico-2024.docx",
		},
		{
			ID:           "2",
			Title:        "Registro de Calificaciones Primer Semestre",
			Type:         model.TypeXLSX,
			SizeBytes:    1_800_000,
			LastModified: day(2024, time.February, 22),
			Content:      "Registro completo de calificaciones de estudiantes del primer semestre, incluyendo notas parciales y finales...",
			Locator:      "documents/calificaciones-primer-semestre.xlsx",
		},
		{
			ID:           "3",
			Title:        "Procedimientos de Inscripción",
			Type:         model.TypeTXT,
			SizeBytes:    456_000,
			LastModified: day(2024, time.January, 8),
			Content:      "Guía detallada de los procedimientos para inscripción de materias, requisitos y fechas importantes...",
			Locator:      "documents/procedimientos-inscripcion.txt",
		},
		{
			ID:           "4",
			Title:        "Plan de Estudios Ingeniería de Software",
			Type:         model.TypeDOCX,
			SizeBytes:    3_100_000,
			LastModified: day(2023, time.December, 12),
			Content:      "Plan de estudios actualizado para la carrera de Ingeniería de Software, incluyendo materias electivas y pre-requisitos...",
			Locator:      "documents/plan-estudios-software.docx",
		},
		{
			ID:           "5",
			Title:        "Manual de Convalidaciones",
			Type:         model.TypeDOCX,
			SizeBytes:    1_200_000,
			LastModified: day(2023, time.November, 20),
			Content:      "Normas y formatos para la convalidación de cursos aprobados en otras universidades...",
			Locator:      "documents/manual-convalidaciones.docx",
		},
		{
			ID:           "6",
			Title:        "Horario de Clases 2024-I",
			Type:         model.TypeXLSX,
			SizeBytes:    640_000,
			LastModified: day(2024, time.March, 1),
			Content:      "Horarios de clases por ciclo, aula y docente para el semestre 2024-I...",
			Locator:      "documents/horario-clases-2024-1.xlsx",
		},
		{
			ID:           "7",
			Title:        "Calendario Académico 2024",
			Type:         model.TypePDF,
			SizeBytes:    980_000,
			LastModified: day(2024, time.January, 15),
			Content:      "Calendario oficial con fechas de matrícula, exámenes y feriados del año académico 2024...",
			Locator:      "documents/calendario-academico-2024.pdf",
		},
	}
}
