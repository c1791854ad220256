package logger_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/golangid/wedding-invitation/logger"
	"go.uber.org/zap/zapcore"
)

func TestInitZap(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.LogI("test message")

	if !bytes.Contains(logOutput.Bytes(), []byte("test message")) {
		t.Error("Expected log message not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"level":"INFO"`)) {
		t.Error("Expected capital level not found")
	}
}

func TestLog(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.Log(zapcore.InfoLevel, "testing log", "test_context", "test_scope")

	if !bytes.Contains(logOutput.Bytes(), []byte(`"testing log"`)) {
		t.Error("Expected log message not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"context":"test_context"`)) {
		t.Error("Expected context not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"scope":"test_scope"`)) {
		t.Error("Expected scope not found")
	}
}

func TestLogE(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.LogE("test error message")
	logger.LogEf("formatted error: %s", "something went wrong")

	if !bytes.Contains(logOutput.Bytes(), []byte("test error message")) {
		t.Error("Expected error message not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte("formatted error: something went wrong")) {
		t.Error("Expected formatted error message not found")
	}
}

func TestLogW(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.LogW("plain warning")
	logger.LogWf("invalid id format: %s", "abc")

	if !bytes.Contains(logOutput.Bytes(), []byte(`"level":"WARN"`)) {
		t.Error("Expected warn level not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte("invalid id format: abc")) {
		t.Error("Expected formatted warning not found")
	}
}

func TestLogIfError(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.LogIfError(nil)
	if logOutput.Len() != 0 {
		t.Error("Expected no output for nil error")
	}

	logger.LogIfError(io.EOF)
	if !bytes.Contains(logOutput.Bytes(), []byte("EOF")) {
		t.Error("Expected error message not found")
	}
}

func TestOptionSetLevel(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput), logger.OptionSetLevel(zapcore.WarnLevel))

	logger.LogI("hidden info")
	logger.LogW("visible warning")

	if bytes.Contains(logOutput.Bytes(), []byte("hidden info")) {
		t.Error("Info entry must be filtered below warn level")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte("visible warning")) {
		t.Error("Expected warning not found")
	}
}

func TestLogWithField(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionAddWriter(io.MultiWriter(logOutput)))

	fields := map[string]interface{}{
		"message": "test log with fields",
		"context": "test_context",
		"scope":   "test_scope",
	}

	logger.LogWithField(zapcore.InfoLevel, fields)

	if !bytes.Contains(logOutput.Bytes(), []byte("test log with fields")) {
		t.Error("Expected message not found in log output")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"context":"test_context"`)) {
		t.Error("Expected context field not found in log output")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"scope":"test_scope"`)) {
		t.Error("Expected scope field not found in log output")
	}
}
