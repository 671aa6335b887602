// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the session credential material of the client: the
// cookie jar shared with the HTTP transport.
package session

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
)

// cookieKey identifies one stored cookie the way the jar does.
type cookieKey struct {
	host   string
	domain string
	path   string
	name   string
}

// Jar is an [http.CookieJar] that remembers which cookies it was given so it
// can expire all of them at once.
type Jar struct {
	jar *cookiejar.Jar

	mu      sync.Mutex
	tracked map[cookieKey]*url.URL
}

// NewJar creates an empty jar.
func NewJar() (*Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Jar{jar: jar, tracked: make(map[cookieKey]*url.URL)}, nil
}

// SetCookies implements [http.CookieJar].
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	for _, c := range cookies {
		path := c.Path
		if path == "" || path[0] != '/' {
			path = defaultPath(u.Path)
		}
		key := cookieKey{host: u.Host, domain: c.Domain, path: path, name: c.Name}

		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			delete(j.tracked, key)
			continue
		}
		j.tracked[key] = &url.URL{Scheme: u.Scheme, Host: u.Host, Path: path}
	}
	j.mu.Unlock()

	j.jar.SetCookies(u, cookies)
}

// Cookies implements [http.CookieJar].
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// Len returns the number of cookies the jar has been given and not yet
// expired.
func (j *Jar) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.tracked)
}

// Invalidate expires, in place, every cookie the client has access to: each
// one is overwritten with an empty value and a past expiry under the same
// name, domain and path.
func (j *Jar) Invalidate() {
	j.mu.Lock()
	tracked := j.tracked
	j.tracked = make(map[cookieKey]*url.URL)
	j.mu.Unlock()

	for key, u := range tracked {
		j.jar.SetCookies(u, []*http.Cookie{{
			Name:    key.name,
			Value:   "",
			Domain:  key.domain,
			Path:    key.path,
			Expires: time.Unix(0, 0),
			MaxAge:  -1,
		}})
	}
}

// defaultPath mirrors RFC 6265 section 5.1.4.
func defaultPath(path string) string {
	if path == "" || path[0] != '/' {
		return "/"
	}

	i := strings.LastIndex(path, "/")
	if i == 0 {
		return "/"
	}
	return path[:i]
}
