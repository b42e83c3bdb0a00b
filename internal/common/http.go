// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package common

import "strings"

func URLForApp(path string, app string) string {
	return strings.Replace(path, "{app}", app, 1)
}

func URLForListing(path string, listingId string) string {
	return strings.Replace(path, "{listingId}", listingId, 1)
}

func URLForSeller(path string, app string, seller string) string {
	return strings.Replace(URLForApp(path, app), "{seller}", seller, 1)
}
