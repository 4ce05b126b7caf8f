package remote

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"robomart/internal/domain"
)

// encodeSubmission serializes a draft into the multipart body the backend
// expects for create and update. All text fields are sent as parts even when
// no image is attached so both cases share one wire shape. The reserved
// specifications field is always the empty-object placeholder.
func encodeSubmission(d domain.Draft) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"name", d.Name},
		{"description", d.Description},
		{"price", strconv.FormatFloat(d.Price, 'f', -1, 64)},
		{"category", d.Category},
		{"stock", strconv.Itoa(d.Stock)},
		{"features", domain.JoinFeatures(d.Features)},
		{"specifications", "{}"},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	for _, a := range d.Attachments {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			`form-data; name="images"; filename="`+escapeQuotes(a.Filename)+`"`)
		ct := a.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(a.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func escapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
