// Copyright 2020 Dragonchain, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tracing bootstraps an OpenTelemetry tracer provider for dctl's
// --trace flag. Spans land on stderr, or on an OTLP collector when an
// endpoint is configured.
package tracing

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc/credentials"
)

// Mode selects where spans are exported.
type Mode string

const (
	// ModeOff disables tracing entirely.
	ModeOff Mode = "off"
	// ModeStdout pretty-prints spans to stderr, keeping stdout parseable.
	ModeStdout Mode = "stdout"
	// ModeOTLPHTTP exports spans to an OTLP HTTP collector.
	ModeOTLPHTTP Mode = "otlp-http"
	// ModeOTLPGRPC exports spans to an OTLP gRPC collector.
	ModeOTLPGRPC Mode = "otlp-grpc"
)

// ParseMode validates a mode name from a CLI flag or environment variable.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeOff, ModeStdout, ModeOTLPHTTP, ModeOTLPGRPC:
		return Mode(name), nil
	case "":
		return ModeOff, nil
	}
	return "", fmt.Errorf("unknown trace mode %q (expected off, stdout, otlp-http, or otlp-grpc)", name)
}

// Config holds exporter configuration.
type Config struct {
	// Mode selects the exporter. ModeOff returns a nil provider.
	Mode Mode

	// Endpoint is the OTLP collector address, host:port for gRPC or
	// host[:port] for HTTP. Ignored for stdout.
	Endpoint string

	// Insecure disables TLS towards the collector. Development only.
	Insecure bool

	// ServiceVersion tags the emitted resource, normally the dctl build
	// version.
	ServiceVersion string
}

// Setup builds a tracer provider for the given configuration and installs
// it as the otel global. Returns nil without error when tracing is off.
// Callers own Shutdown, which flushes pending spans.
func Setup(ctx context.Context, cfg Config) (*sdktrace.TracerProvider, error) {
	if cfg.Mode == ModeOff || cfg.Mode == "" {
		return nil, nil
	}

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		// Empty schema URL avoids merge conflicts with the default
		// resource.
		resource.NewWithAttributes(
			"",
			semconv.ServiceName("dctl"),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)
	return tp, nil
}

func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	switch cfg.Mode {
	case ModeStdout:
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(os.Stderr),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("create stdout trace exporter: %w", err)
		}
		return exporter, nil

	case ModeOTLPHTTP:
		opts := []otlptracehttp.Option{}
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		} else {
			opts = append(opts, otlptracehttp.WithTLSClientConfig(&tls.Config{
				MinVersion: tls.VersionTLS12,
			}))
		}
		exporter, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("create OTLP HTTP trace exporter: %w", err)
		}
		return exporter, nil

	case ModeOTLPGRPC:
		opts := []otlptracegrpc.Option{}
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracegrpc.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		} else {
			opts = append(opts, otlptracegrpc.WithTLSCredentials(
				credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}),
			))
		}
		exporter, err := otlptracegrpc.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("create OTLP gRPC trace exporter: %w", err)
		}
		return exporter, nil
	}
	return nil, fmt.Errorf("unknown trace mode %q", cfg.Mode)
}
