/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package scm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorString(t *testing.T) {
	a := Author{Name: "Gogs Admin", Email: "gogsadmin@example.com"}
	assert.Equal(t, "Gogs Admin <gogsadmin@example.com>", a.String())
	assert.False(t, a.IsZero())
	assert.True(t, Author{}.IsZero())
}

func TestCredentialsBasicAuth(t *testing.T) {
	var none *Credentials
	assert.True(t, none.IsZero())
	assert.True(t, (&Credentials{}).IsZero())

	c := &Credentials{Username: "gogsadmin", Password: "RedHat$1"}
	assert.False(t, c.IsZero())
	assert.Equal(t, "Basic Z29nc2FkbWluOlJlZEhhdCQx", c.BasicAuth())
}

func TestStatusClean(t *testing.T) {
	assert.True(t, Status{Branch: "master", Ahead: 1}.Clean())
	assert.False(t, Status{Untracked: true}.Clean())
}
