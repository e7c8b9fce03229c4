package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// InterfaceExportService define la exportación a Excel
type InterfaceExportService interface {
	ExportDevices(user *models.User, q *DeviceListQuery) (*excelize.File, string, error)
	ExportMeasurements(user *models.User, q *MeasurementListQuery) (*excelize.File, string, error)
}

// ExportService genera libros de Excel con los mismos filtros y el
// mismo alcance que las listas en pantalla
type ExportService struct {
	Devices      InterfaceDeviceService
	Measurements InterfaceMeasurementService
}

// NewExportService crea el servicio de exportación
func NewExportService(devices InterfaceDeviceService, measurements InterfaceMeasurementService) InterfaceExportService {
	return &ExportService{Devices: devices, Measurements: measurements}
}

// Etiquetas en pantalla de los estados de dispositivo
var deviceStatusLabels = map[models.DeviceStatus]string{
	models.DeviceStatusActive:      "Activo",
	models.DeviceStatusInactive:    "Inactivo",
	models.DeviceStatusMaintenance: "Mantenimiento",
	models.DeviceStatusError:       "Error",
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
	})
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// 1 ExportDevices arma el libro de dispositivos con una fila por
// dispositivo visible. El nombre del archivo lleva fecha y hora.
func (s *ExportService) ExportDevices(user *models.User, q *DeviceListQuery) (*excelize.File, string, error) {
	devices, err := s.Devices.AllDevices(user, q)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Dispositivos"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"ID", "Nombre", "Tipo de Dispositivo", "Ubicación", "Estado", "Fecha de Creación", "Última Actualización"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return nil, "", err
	}

	if style, err := headerStyle(f); err == nil {
		f.SetCellStyle(sheet, "A1", "G1", style)
	}

	for i, device := range devices {
		status := deviceStatusLabels[device.Status]
		if status == "" {
			status = string(device.Status)
		}
		row := []interface{}{
			device.ID,
			device.Name,
			device.DeviceType.Name,
			device.Location,
			status,
			device.CreatedAt.Format("02/01/2006 15:04:05"),
			device.UpdatedAt.Format("02/01/2006 15:04:05"),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, "", err
		}
	}

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "D", 25)
	f.SetColWidth(sheet, "E", "G", 20)

	filename := fmt.Sprintf("dispositivos_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}

// 2 ExportMeasurements arma el libro de mediciones con una hoja de
// datos y una hoja de resumen con totales y promedios
func (s *ExportService) ExportMeasurements(user *models.User, q *MeasurementListQuery) (*excelize.File, string, error) {
	measurements, err := s.Measurements.AllMeasurements(user, q)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Mediciones"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"ID", "Dispositivo", "Tipo", "Valor", "Unidad", "Fecha y Hora"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return nil, "", err
	}

	style, styleErr := headerStyle(f)
	if styleErr == nil {
		f.SetCellStyle(sheet, "A1", "F1", style)
	}

	var total, max, min float64
	for i, m := range measurements {
		row := []interface{}{
			m.ID,
			m.Device.Name,
			m.Device.DeviceType.Name,
			m.Value,
			m.Unit,
			m.Timestamp.Format("02/01/2006 15:04:05"),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, "", err
		}

		total += m.Value
		if i == 0 || m.Value > max {
			max = m.Value
		}
		if i == 0 || m.Value < min {
			min = m.Value
		}
	}

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "F", 20)

	// Hoja de resumen con las estadísticas del conjunto exportado
	const summary = "Resumen"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, "", err
	}

	f.SetCellValue(summary, "A1", "Estadísticas de Mediciones")
	if styleErr == nil {
		f.SetCellStyle(summary, "A1", "A1", style)
	}

	count := len(measurements)
	average := 0.0
	if count > 0 {
		average = total / float64(count)
	}

	stats := [][]interface{}{
		{"Total de mediciones:", count},
		{"Valor total:", fmt.Sprintf("%.2f", total)},
		{"Valor promedio:", fmt.Sprintf("%.2f", average)},
		{"Valor máximo:", fmt.Sprintf("%.2f", max)},
		{"Valor mínimo:", fmt.Sprintf("%.2f", min)},
	}
	for i, pair := range stats {
		if err := writeRow(f, summary, i+3, pair); err != nil {
			return nil, "", err
		}
	}
	f.SetColWidth(summary, "A", "A", 25)
	f.SetColWidth(summary, "B", "B", 18)

	filename := fmt.Sprintf("mediciones_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}
