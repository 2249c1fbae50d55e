// Copyright 2022 The Impala-1 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"testing"

	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
)

func TestLogConfig_getter(t *testing.T) {
	defer leaktest.AfterTest(t)()
	cfg := &LogConfig{
		Level:  "debug",
		Format: "console",
	}
	require.Equal(t, zap.NewAtomicLevelAt(zap.DebugLevel), cfg.getLevel())
	require.Equal(t, 2, len(cfg.getOptions()))
	require.Equal(t, getConsoleSyncer(), cfg.getSyncer())

	entry := zapcore.Entry{Level: zapcore.DebugLevel, Message: "console msg"}
	wantMsg, _ := getLoggerEncoder("console").EncodeEntry(entry, nil)
	gotMsg, _ := cfg.getEncoder().EncodeEntry(entry, nil)
	require.Equal(t, wantMsg.String(), gotMsg.String())
}

func TestLogConfig_defaults(t *testing.T) {
	defer leaktest.AfterTest(t)()
	cfg := &LogConfig{Level: "not-a-level", StacktraceLevel: "not-a-level"}
	require.Equal(t, zap.NewAtomicLevelAt(zap.InfoLevel), cfg.getLevel())
	require.Equal(t, zapcore.PanicLevel, cfg.getStacktraceLevel())
}

func TestSetupLogger(t *testing.T) {
	defer leaktest.AfterTest(t)()
	for _, format := range []string{"console", "json"} {
		logger := SetupLogger(&LogConfig{
			Level:           zapcore.DebugLevel.String(),
			Format:          format,
			MaxSize:         512,
			StacktraceLevel: "panic",
		})
		require.NotNil(t, logger)
		require.Same(t, logger, GetGlobalLogger())
	}
}

func TestSetupLogger_panic(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer func() {
		err := recover()
		require.NotNil(t, err)
		require.True(t, moerr.IsMoErrCode(err.(error), moerr.ErrInternal))
	}()
	SetupLogger(&LogConfig{Level: "debug", Format: "yaml"})
	t.Errorf("did not receive panic")
}
