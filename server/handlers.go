package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/mapper"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
)

const (
	recordsKey     = "records"
	inputFormat    = "marcxml"
	defaultOutput  = "json"
	skippedHeader  = "X-Records-Skipped"
	recordsHeader  = "X-Records-Converted"
	defaultProfile = "default"
)

var contentTypes = map[string]string{
	"json":      "application/json; charset=utf-8",
	"jsonl":     "application/x-ndjson; charset=utf-8",
	"protojson": "application/x-ndjson; charset=utf-8",
	"csv":       "text/csv; charset=utf-8",
	"protobuf":  "application/octet-stream",
}

type errorResponse struct {
	Error string `json:"error"`
}

func ignoreHandler(c *gin.Context) {
}

func (s *Server) versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": s.config.Version})
}

func (s *Server) healthCheckHandler(c *gin.Context) {
	type hcResp struct {
		Healthy bool   `json:"healthy"`
		Message string `json:"message,omitempty"`
	}

	status := http.StatusOK
	hcMap := map[string]hcResp{
		"parser":   {Healthy: true},
		"profiles": {Healthy: true},
	}

	if _, err := format.GetParser(inputFormat); err != nil {
		status = http.StatusInternalServerError
		hcMap["parser"] = hcResp{Healthy: false, Message: err.Error()}
	}
	if _, err := mapping.NewProfileRegistry(); err != nil {
		status = http.StatusInternalServerError
		hcMap["profiles"] = hcResp{Healthy: false, Message: err.Error()}
	}

	c.JSON(status, hcMap)
}

func (s *Server) formatsHandler(c *gin.Context) {
	type formatInfo struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Extensions  []string `json:"extensions"`
		Input       bool     `json:"input"`
		Output      bool     `json:"output"`
	}

	out := []formatInfo{}
	for _, name := range format.DefaultRegistry.List() {
		f, _ := format.Get(name)
		_, isParser := f.(format.Parser)
		_, isSerializer := f.(format.Serializer)
		out = append(out, formatInfo{
			Name:        f.Name(),
			Description: f.Description(),
			Extensions:  f.Extensions(),
			Input:       isParser,
			Output:      isSerializer,
		})
	}
	c.JSON(http.StatusOK, out)
}

// convertHandler maps a MARCXML request body and answers with the records
// in the format named by ?format= (json by default). ?profile= selects an
// output profile and ?strict=true rejects unsupported records.
func (s *Server) convertHandler(c *gin.Context) {
	start := time.Now()

	target := c.DefaultQuery("format", defaultOutput)
	serializer, err := format.GetSerializer(target)
	if err != nil {
		s.fail(c, http.StatusBadRequest, "format", err)
		return
	}

	prof, err := s.config.ResolveProfile(c.DefaultQuery("profile", defaultProfile))
	if err != nil {
		s.fail(c, http.StatusBadRequest, "profile", err)
		return
	}

	strict := false
	if v := c.Query("strict"); v != "" {
		strict, err = strconv.ParseBool(v)
		if err != nil {
			s.fail(c, http.StatusBadRequest, "strict", fmt.Errorf("invalid strict value %q", v))
			return
		}
	}

	parser, err := format.GetParser(inputFormat)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "parser", err)
		return
	}

	skipped := 0
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	records, err := parser.Parse(body, &format.ParseOptions{
		Profile:    prof,
		Strict:     strict,
		SourceName: "request",
		Skipped:    &skipped,
	})
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			s.fail(c, http.StatusRequestEntityTooLarge, "size", err)
		case errors.Is(err, mapper.ErrUnsupportedRecordType):
			s.fail(c, http.StatusUnprocessableEntity, "unsupported", err)
		default:
			s.fail(c, http.StatusBadRequest, "parse", err)
		}
		return
	}

	var buf bytes.Buffer
	opts := format.NewSerializeOptions()
	opts.Profile = prof
	opts.MultiValueSeparator = ""
	if err := serializer.Serialize(&buf, records, opts); err != nil {
		s.fail(c, http.StatusInternalServerError, "serialize", err)
		return
	}

	s.metrics.observeRecords(records, skipped)
	s.metrics.duration.WithLabelValues(target).Observe(time.Since(start).Seconds())
	c.Set(recordsKey, len(records))

	c.Header(recordsHeader, strconv.Itoa(len(records)))
	c.Header(skippedHeader, strconv.Itoa(skipped))
	c.Data(http.StatusOK, contentType(target), buf.Bytes())
}

func (s *Server) fail(c *gin.Context, status int, reason string, err error) {
	s.metrics.failures.WithLabelValues(reason).Inc()
	_ = c.Error(err)
	c.JSON(status, errorResponse{Error: err.Error()})
}

func contentType(name string) string {
	if ct, ok := contentTypes[name]; ok {
		return ct
	}
	return "application/octet-stream"
}
