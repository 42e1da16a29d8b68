package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"PATHFINDER_BACK-END/internal/export"
	"PATHFINDER_BACK-END/internal/utils"
)

type exportFormat string

const (
	formatPDF exportFormat = "pdf"
	formatICS exportFormat = "ics"
)

var contentTypes = map[exportFormat]string{
	formatPDF: "application/pdf",
	formatICS: "text/calendar; charset=utf-8",
}

// writeExport renders doc into a buffer first so a failed render still gets a JSON error
func writeExport(w http.ResponseWriter, doc export.Document, format exportFormat, loc *time.Location) {
	var buf bytes.Buffer
	var err error
	switch format {
	case formatPDF:
		err = export.WritePDF(&buf, doc)
	case formatICS:
		err = export.WriteICS(&buf, doc, loc)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if errors.Is(err, export.ErrNoStartDate) {
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Calendar export unavailable", "The trip has no start date")
		return
	}
	if err != nil {
		log.Printf("export: %s render failed: %v", format, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Export failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName(string(format))))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("export: write failed: %v", err)
	}
}
