/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package log

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/asgardeo/beacon/internal/system/constants"
)

type LogTestSuite struct {
	suite.Suite
	originalLogLevel string
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	suite.originalLogLevel = os.Getenv(constants.LogLevelEnvironmentVariable)
}

func (suite *LogTestSuite) TearDownTest() {
	if err := os.Setenv(constants.LogLevelEnvironmentVariable, suite.originalLogLevel); err != nil {
		suite.T().Errorf("Failed to restore environment variable: %v", err)
	}
	logger = nil
	once = sync.Once{}
}

func (suite *LogTestSuite) TestInitLoggerWithEnvironmentVariable() {
	testCases := []struct {
		name     string
		logLevel string
		isValid  bool
	}{
		{"DefaultLevel", "", true},
		{"DebugLevel", "debug", true},
		{"InfoLevel", "INFO", true},
		{"WarnLevel", "warn", true},
		{"ErrorLevel", "error", true},
		{"InvalidLevel", "unknown", false},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			logger = nil
			once = sync.Once{}

			if tc.logLevel != "" {
				assert.NoError(t, os.Setenv(constants.LogLevelEnvironmentVariable, tc.logLevel))
			} else {
				assert.NoError(t, os.Unsetenv(constants.LogLevelEnvironmentVariable))
			}

			if tc.isValid {
				assert.NotPanics(t, func() {
					_ = GetLogger()
				})
			} else {
				assert.Panics(t, func() {
					_ = GetLogger()
				})
			}
		})
	}
}

func (suite *LogTestSuite) TestWithAddsFields() {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{internal: zap.New(core)}

	l.With(String(LoggerKeyComponentName, "TestComponent")).Info("hello", Int("count", 2))

	entries := logs.All()
	assert.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "hello", entries[0].Message)
	assert.Equal(suite.T(), "TestComponent", entries[0].ContextMap()[LoggerKeyComponentName])
	assert.Equal(suite.T(), int64(2), entries[0].ContextMap()["count"])
	assert.True(suite.T(), l.IsDebugEnabled())
}

func (suite *LogTestSuite) TestMaskString() {
	assert.Equal(suite.T(), "", MaskString(""))
	assert.Equal(suite.T(), "***", MaskString("abc"))
	assert.Equal(suite.T(), "a***e", MaskString("abcde"))
}

func (suite *LogTestSuite) TestAccessLogHandler() {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &Logger{internal: zap.New(core)}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
		_, _ = w.Write([]byte("OK"))
	})

	req := httptest.NewRequest(http.MethodGet, "/oauth2/authorize?code=secret", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	rr := httptest.NewRecorder()

	AccessLogHandler(l, testHandler).ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	entries := logs.All()
	assert.Len(suite.T(), entries, 1)
	assert.Contains(suite.T(), entries[0].Message, "192.168.1.1")
	assert.Contains(suite.T(), entries[0].Message, "GET /oauth2/authorize")
	assert.Contains(suite.T(), entries[0].Message, "302")
	assert.NotContains(suite.T(), entries[0].Message, "secret")
}

func (suite *LogTestSuite) TestLoggingResponseWriter() {
	rec := httptest.NewRecorder()
	lrw := &loggingResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	lrw.WriteHeader(http.StatusNotFound)
	assert.Equal(suite.T(), http.StatusNotFound, lrw.statusCode)

	n, err := lrw.Write([]byte("test content"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, n)
	assert.Equal(suite.T(), 12, lrw.size)
	assert.Equal(suite.T(), "test content", rec.Body.String())
}
