package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lpendeavors/syllabus-planner/config"
	"github.com/lpendeavors/syllabus-planner/internal/store"
)

// ── 测试辅助 ──

func setupTestSyllabusService(extractor *mockExtractor) (SyllabusService, *store.Store) {
	cfg := &config.Config{
		Server: config.ServerConfig{MaxUploadSize: 10 << 20},
	}
	st, _ := newTestStore()
	svc := NewSyllabusService(cfg, st, extractor, zap.NewNop())
	return svc, st
}

// docxBytes 构造最小可解析的 .docx（zip + word/document.xml）
func docxBytes(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body.String() + `</w:body></w:document>`

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("构造 docx 失败: %v", err)
	}
	f.Write([]byte(doc))
	zw.Close()
	return buf.Bytes()
}

// ── Ingest 测试 ──

func TestSyllabusService_Ingest_Docx(t *testing.T) {
	extractor := &mockExtractor{course: parsedCourse("Intro to Biology")}
	svc, st := setupTestSyllabusService(extractor)

	data := docxBytes(t, "Intro to Biology", "Lecture 1: Cells, Sep 5")
	resp, err := svc.Ingest(context.Background(), "syllabus.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
	if err != nil {
		t.Fatalf("Ingest 应成功: %v", err)
	}

	if !strings.Contains(extractor.gotText, "Lecture 1: Cells") {
		t.Errorf("抽取文本应传给解析方，实际=%q", extractor.gotText)
	}
	if resp.Course.Title != "Intro to Biology" {
		t.Errorf("期望Title=Intro to Biology，实际=%s", resp.Course.Title)
	}
	if !resp.Persisted {
		t.Error("快照写入成功时 persisted 应为 true")
	}

	// 条目已获得稳定 ID
	for _, l := range resp.Course.Lectures {
		if l.ID == "" {
			t.Error("入库条目应获得非空 ID")
		}
	}

	// 课程已并入存储
	courses := st.Courses()
	if len(courses) != 1 || courses[0].Title != "Intro to Biology" {
		t.Errorf("课程应并入存储，实际=%+v", courses)
	}
}

func TestSyllabusService_Ingest_ImageUsesMultimodal(t *testing.T) {
	extractor := &mockExtractor{course: parsedCourse("Chemistry")}
	svc, _ := setupTestSyllabusService(extractor)

	resp, err := svc.Ingest(context.Background(), "syllabus.png", "image/png", []byte("fake-png"))
	if err != nil {
		t.Fatalf("Ingest 应成功: %v", err)
	}
	if !extractor.imageCalled {
		t.Error("图片应走多模态解析路径")
	}
	if extractor.gotMimeType != "image/png" {
		t.Errorf("期望 mime=image/png，实际=%s", extractor.gotMimeType)
	}
	if resp.Course.Title != "Chemistry" {
		t.Errorf("期望Title=Chemistry，实际=%s", resp.Course.Title)
	}
}

func TestSyllabusService_Ingest_UnsupportedType(t *testing.T) {
	svc, st := setupTestSyllabusService(&mockExtractor{})

	_, err := svc.Ingest(context.Background(), "notes.txt", "text/plain", []byte("hello"))
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("期望 ErrUnsupportedFileType，实际: %v", err)
	}
	if len(st.Courses()) != 0 {
		t.Error("失败路径不应写任何状态")
	}
}

func TestSyllabusService_Ingest_FileTooLarge(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{MaxUploadSize: 10}}
	st, _ := newTestStore()
	svc := NewSyllabusService(cfg, st, &mockExtractor{}, zap.NewNop())

	_, err := svc.Ingest(context.Background(), "big.pdf", "application/pdf", make([]byte, 11))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("期望 ErrFileTooLarge，实际: %v", err)
	}
}

func TestSyllabusService_Ingest_LegacyDocUnsupported(t *testing.T) {
	svc, st := setupTestSyllabusService(&mockExtractor{})

	// MIME 合法（application/msword）但内容是旧版二进制格式，非 zip 包
	oleHeader := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	_, err := svc.Ingest(context.Background(), "syllabus.doc", "application/msword", oleHeader)
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("期望 ErrUnsupportedFileType，实际: %v", err)
	}
	if len(st.Courses()) != 0 {
		t.Error("失败路径不应写任何状态")
	}
}

func TestSyllabusService_Ingest_EmptyDocx(t *testing.T) {
	svc, _ := setupTestSyllabusService(&mockExtractor{})

	data := docxBytes(t) // 无任何段落
	_, err := svc.Ingest(context.Background(), "empty.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
	if !errors.Is(err, ErrNoTextFound) {
		t.Errorf("期望 ErrNoTextFound，实际: %v", err)
	}
}

func TestSyllabusService_Ingest_ExtractorFailure(t *testing.T) {
	extractor := &mockExtractor{err: errors.New("上游超时")}
	svc, st := setupTestSyllabusService(extractor)

	_, err := svc.Ingest(context.Background(), "syllabus.png", "image/png", []byte("fake"))
	if !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("期望 ErrExtractionFailed，实际: %v", err)
	}
	if len(st.Courses()) != 0 {
		t.Error("解析失败不应写任何状态")
	}
}

func TestSyllabusService_Ingest_SnapshotFailureStillReturnsCourse(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{MaxUploadSize: 10 << 20}}
	snap := &mockSnapshotRepo{saveErr: errors.New("磁盘满")}
	st := store.New(snap, zap.NewNop())
	svc := NewSyllabusService(cfg, st, &mockExtractor{course: parsedCourse("Biology")}, zap.NewNop())

	resp, err := svc.Ingest(context.Background(), "syllabus.png", "image/png", []byte("fake"))
	if err != nil {
		t.Fatalf("快照写入失败不应使 Ingest 整体失败: %v", err)
	}
	if resp.Persisted {
		t.Error("快照写入失败时 persisted 应为 false")
	}
	if len(st.Courses()) != 1 {
		t.Error("内存状态仍应更新")
	}
}

func TestSyllabusService_Ingest_RepeatUploadAppends(t *testing.T) {
	extractor := &mockExtractor{course: parsedCourse("Biology")}
	svc, st := setupTestSyllabusService(extractor)
	ctx := context.Background()

	svc.Ingest(ctx, "syllabus.png", "image/png", []byte("fake"))
	svc.Ingest(ctx, "syllabus.png", "image/png", []byte("fake"))

	if len(st.Courses()) != 2 {
		t.Errorf("重复上传应追加而非去重，期望2条，实际=%d", len(st.Courses()))
	}
}
