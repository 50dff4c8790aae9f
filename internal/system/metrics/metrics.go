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

// Package metrics exposes the Prometheus counters of the authorization server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "beacon"

// Outcome labels shared by the counters.
const (
	OutcomeSuccess       = "success"
	OutcomeLoginRequired = "login_required"
	OutcomeRedirectError = "redirect_error"
	OutcomeClientError   = "client_error"
	OutcomeServerError   = "server_error"
)

// Metrics holds the counters recorded by the OAuth endpoints. A nil *Metrics records nothing.
type Metrics struct {
	registry              *prometheus.Registry
	authorizationRequests *prometheus.CounterVec
	tokensIssued          *prometheus.CounterVec
	tokenRequests         *prometheus.CounterVec
	userInfoRequests      *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them, together with the process and Go
// runtime collectors, on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		authorizationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oauth2",
			Name:      "authorization_requests_total",
			Help:      "Authorization and respond requests by outcome.",
		}, []string{"outcome"}),
		tokensIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oauth2",
			Name:      "tokens_issued_total",
			Help:      "Access tokens issued by response type.",
		}, []string{"response_type"}),
		tokenRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oauth2",
			Name:      "token_requests_total",
			Help:      "Token endpoint requests by outcome.",
		}, []string{"outcome"}),
		userInfoRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oauth2",
			Name:      "userinfo_requests_total",
			Help:      "User info requests by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.authorizationRequests,
		m.tokensIssued,
		m.tokenRequests,
		m.userInfoRequests,
	)
	return m
}

// Handler returns the HTTP handler serving the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordAuthorizationRequest counts an authorization or respond request.
func (m *Metrics) RecordAuthorizationRequest(outcome string) {
	if m == nil {
		return
	}
	m.authorizationRequests.WithLabelValues(outcome).Inc()
}

// RecordTokenIssued counts an access token issued for the given response type.
func (m *Metrics) RecordTokenIssued(responseType string) {
	if m == nil {
		return
	}
	m.tokensIssued.WithLabelValues(responseType).Inc()
}

// RecordTokenRequest counts a token endpoint request.
func (m *Metrics) RecordTokenRequest(outcome string) {
	if m == nil {
		return
	}
	m.tokenRequests.WithLabelValues(outcome).Inc()
}

// RecordUserInfoRequest counts a user info request.
func (m *Metrics) RecordUserInfoRequest(outcome string) {
	if m == nil {
		return
	}
	m.userInfoRequests.WithLabelValues(outcome).Inc()
}
