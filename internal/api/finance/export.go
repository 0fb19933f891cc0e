// internal/api/finance/export.go
package finance

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/basketbot/admin-console/internal/backend"
)

// GET /finance/report/export?from&to — the period report as a
// spreadsheet. Built from the same backend response the page renders.
func HandleExport(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	res := backend.Get[backend.FinanceReport](r.Context(), client.ForRequest(r),
		"/api/admin/finance/report?from="+url.QueryEscape(from)+"&to="+url.QueryEscape(to))
	if !res.OK || !res.HasData {
		http.Error(w, backend.UserFacing(res.Status, res.Err), http.StatusBadGateway)
		return
	}
	report := res.Data

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"Дата", "Тип", "Сумма", "Описание"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	for _, e := range report.Entries {
		typeLabel := "Расход"
		if e.Type == "INCOME" {
			typeLabel = "Приход"
		}
		desc := ""
		if e.Description != nil {
			desc = *e.Description
		}
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), e.EntryDate)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), typeLabel)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", rowIdx), e.Amount.String())
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", rowIdx), desc)
		rowIdx++
	}

	rowIdx++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Приход")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), report.TotalIncome.String())
	rowIdx++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Расход")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), report.TotalExpense.String())
	rowIdx++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Баланс")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), report.Balance.String())

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=finance-%s-%s.xlsx", from, to))
	if err := f.Write(w); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Finance export failed")
	}
}
