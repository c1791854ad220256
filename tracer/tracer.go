package tracer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/golangid/wedding-invitation/candishared"
	"github.com/golangid/wedding-invitation/codebase/interfaces"
	"github.com/golangid/wedding-invitation/config/env"
	opentracing "github.com/opentracing/opentracing-go"
	ext "github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
	config "github.com/uber/jaeger-client-go/config"
)

var (
	mu             sync.RWMutex
	errorWhitelist []error
)

// InitOpenTracing init jaeger tracing as opentracing global tracer, the closer flush buffered spans
func InitOpenTracing(serviceName string, opts ...OptionFunc) (io.Closer, error) {
	option := Option{
		AgentHost: env.BaseEnv().JaegerTracingHost,
		Level:     env.BaseEnv().Environment,
	}

	for _, opt := range opts {
		opt(&option)
	}
	SetErrorWhitelist(option.ErrorWhitelist...)

	if option.Level != "" {
		serviceName = fmt.Sprintf("%s-%s", serviceName, strings.ToLower(option.Level))
	}
	defaultTags := []opentracing.Tag{
		{Key: "num_cpu", Value: runtime.NumCPU()},
		{Key: "go_version", Value: runtime.Version()},
	}
	if option.ServiceVersion != "" {
		defaultTags = append(defaultTags, opentracing.Tag{
			Key: "service_version", Value: option.ServiceVersion,
		})
	}
	cfg := &config.Configuration{
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:            true,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  option.AgentHost,
		},
		ServiceName: serviceName,
		Tags:        defaultTags,
	}
	tracer, closer, err := cfg.NewTracer(config.MaxTagValueLength(math.MaxInt32))
	if err != nil {
		return nil, fmt.Errorf("cannot init opentracing connection: %w", err)
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}

// SetErrorWhitelist errors recorded as log in span instead of span error
func SetErrorWhitelist(errs ...error) {
	mu.Lock()
	defer mu.Unlock()
	errorWhitelist = errs
}

func isWhitelisted(err error) bool {
	mu.RLock()
	defer mu.RUnlock()
	for _, e := range errorWhitelist {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

type jaegerImpl struct {
	ctx  context.Context
	span opentracing.Span
	tags map[string]interface{}
}

// StartTrace starting trace child span from parent span
func StartTrace(ctx context.Context, operationName string) interfaces.Tracer {
	if candishared.GetValueFromContext(ctx, skipTracer) != nil {
		return &jaegerImpl{ctx: ctx}
	}

	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		// init new span
		span, ctx = opentracing.StartSpanFromContext(ctx, operationName)
	} else {
		span = opentracing.GlobalTracer().StartSpan(operationName, opentracing.ChildOf(span.Context()))
		ctx = opentracing.ContextWithSpan(ctx, span)
	}
	return &jaegerImpl{
		ctx:  ctx,
		span: span,
	}
}

// StartTraceWithContext starting trace child span from parent span, returning tracer and context
func StartTraceWithContext(ctx context.Context, operationName string) (interfaces.Tracer, context.Context) {
	t := StartTrace(ctx, operationName)
	return t, t.Context()
}

// StartTraceFromHeader starting root span of incoming http request, continue remote span when header carry one
func StartTraceFromHeader(ctx context.Context, operationName string, header http.Header) (interfaces.Tracer, context.Context) {
	if skip, _ := strconv.ParseBool(header.Get(candihelper.HeaderDisableTrace)); skip {
		ctx = SkipTraceContext(ctx)
		return &jaegerImpl{ctx: ctx}, ctx
	}

	globalTracer := opentracing.GlobalTracer()
	var span opentracing.Span
	if spanCtx, err := globalTracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(header)); err == nil {
		span = globalTracer.StartSpan(operationName, ext.RPCServerOption(spanCtx))
	} else {
		span = globalTracer.StartSpan(operationName)
	}
	ext.SpanKindRPCServer.Set(span)
	ctx = opentracing.ContextWithSpan(ctx, span)
	t := &jaegerImpl{ctx: ctx, span: span}
	return t, ctx
}

// Context get active context
func (t *jaegerImpl) Context() context.Context {
	return t.ctx
}

// Tags create tags in tracer span
func (t *jaegerImpl) Tags() map[string]interface{} {
	t.tags = make(map[string]interface{})
	return t.tags
}

// SetTag set tags in tracer span
func (t *jaegerImpl) SetTag(key string, value interface{}) {
	if t.span == nil {
		return
	}

	if t.tags == nil {
		t.tags = make(map[string]interface{})
	}
	t.tags[key] = value
}

// InjectRequestHeader to continue tracer with custom header carrier
func (t *jaegerImpl) InjectRequestHeader(header map[string]string) {
	if t.span == nil {
		return
	}
	ext.SpanKindRPCClient.Set(t.span)
	t.span.Tracer().Inject(
		t.span.Context(),
		opentracing.TextMap,
		opentracing.TextMapCarrier(header),
	)
}

// SetError set error in span
func (t *jaegerImpl) SetError(err error) {
	SetError(t.ctx, err)
}

// Log set log data
func (t *jaegerImpl) Log(key string, value interface{}) {
	Log(t.ctx, key, value)
}

// Finish trace with additional tags data, must in deferred function
func (t *jaegerImpl) Finish(additionalTags ...map[string]interface{}) {
	if t.span == nil {
		return
	}

	defer t.span.Finish()
	if additionalTags != nil && t.tags == nil {
		t.tags = make(map[string]interface{})
	}

	for _, tag := range additionalTags {
		for k, v := range tag {
			t.tags[k] = v
		}
	}

	for k, v := range t.tags {
		t.span.SetTag(k, toString(v))
	}
	t.span.SetTag("num_goroutines", runtime.NumGoroutine())
}

// Log trace
func Log(ctx context.Context, key string, value interface{}) {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return
	}

	span.LogKV(key, toString(value))
}

// SetError func
func SetError(ctx context.Context, err error) {
	span := opentracing.SpanFromContext(ctx)
	if span == nil || err == nil {
		return
	}

	if isWhitelisted(err) {
		span.LogKV("error", err.Error())
		return
	}

	ext.Error.Set(span, true)
	span.SetTag("error.message", err.Error())
	span.LogFields(otlog.String("error", err.Error()))
}

// GetTraceID func
func GetTraceID(ctx context.Context) string {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return ""
	}

	traceID := fmt.Sprintf("%+v", span.Context())
	splits := strings.Split(traceID, ":")
	if len(splits) > 0 {
		return splits[0]
	}

	return traceID
}

func toString(v interface{}) (s string) {
	switch val := v.(type) {
	case error:
		if val != nil {
			s = val.Error()
		}
	case int:
		s = strconv.Itoa(val)
	default:
		s = string(candihelper.ToBytes(val))
	}

	if maxSize := env.BaseEnv().JaegerMaxPacketSize; maxSize > 0 && len(s) >= maxSize {
		return fmt.Sprintf("<<Overflow, cannot show data. Size is = %d bytes, JAEGER_MAX_PACKET_SIZE = %d bytes>>", len(s), maxSize)
	}
	return
}

var skipTracer candishared.ContextKey = "nooptracer"

// SkipTraceContext inject to context for skip span tracer
func SkipTraceContext(ctx context.Context) context.Context {
	return candishared.SetToContext(ctx, skipTracer, struct{}{})
}
