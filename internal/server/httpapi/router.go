// Package httpapi serves the read-only dashboard API over HTTP (gin).
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/logging"
	pb "github.com/dmitrijs2005/fieldsync/internal/proto"
	"github.com/dmitrijs2005/fieldsync/internal/server/models"
	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Reports are rendered with protojson so the dashboard sees the same field
// names as the gRPC API.
var jsonOpts = protojson.MarshalOptions{EmitUnpopulated: true}

type ReportReader interface {
	List(ctx context.Context, siteID string) ([]*models.Report, error)
	Get(ctx context.Context, id string) (*models.Report, error)
}

type handler struct {
	reports ReportReader
	logger  logging.Logger
}

// NewRouter builds the dashboard routes:
//
//	GET /healthz
//	GET /api/v1/sites/:siteID/reports
//	GET /api/v1/reports/:id
func NewRouter(reports ReportReader, logger logging.Logger) *gin.Engine {
	h := &handler{reports: reports, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), h.accessLog)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.GET("/sites/:siteID/reports", h.listReports)
	v1.GET("/reports/:id", h.getReport)

	return r
}

func (h *handler) listReports(c *gin.Context) {
	list, err := h.reports.List(c.Request.Context(), c.Param("siteID"))
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]*pb.Report, 0, len(list))
	for _, r := range list {
		out = append(out, r.ToProto())
	}
	h.render(c, &pb.ListResponse{Reports: out})
}

func (h *handler) getReport(c *gin.Context) {
	rep, err := h.reports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, rep.ToProto())
}

func (h *handler) render(c *gin.Context, m proto.Message) {
	b, err := jsonOpts.Marshal(m)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

func (h *handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidDraft):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.Error(c.Request.Context(), err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.logger.Debug(c.Request.Context(), "http",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}
