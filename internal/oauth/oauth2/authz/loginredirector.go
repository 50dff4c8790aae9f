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

package authz

import (
	"net/url"
	"strings"

	appmodel "github.com/asgardeo/beacon/internal/application/model"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/system/config"
)

// BuildLoginRedirectURL returns the login page an unauthenticated user is sent to. The client's
// own login page wins over the site login page, which wins over the default login location.
// The returnUrl parameter points back at the respond endpoint of the pending authorization.
func BuildLoginRedirectURL(app *appmodel.ClientApplication, site config.SiteConfig, pendingID string) string {
	loginPage := site.DefaultLogin
	switch {
	case app != nil && app.LoginPage != "":
		loginPage = app.LoginPage
	case site.LoginPage != "":
		loginPage = site.LoginPage
	}

	returnURL := (&url.URL{Path: constants.OAuth2RespondEndpoint + pendingID}).EscapedPath()

	separator := "?"
	if strings.Contains(loginPage, "?") {
		separator = "&"
		if strings.HasSuffix(loginPage, "?") || strings.HasSuffix(loginPage, "&") {
			separator = ""
		}
	}
	return loginPage + separator + constants.RequestParamReturnURL + "=" + returnURL
}
