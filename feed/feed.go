// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package feed

import (
	"context"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/price"
)

// Fetcher - source of price quotes
type Fetcher interface {
	Fetch(ctx context.Context) (price.Quote, error)
}

// Configuration - where and how fast to fetch
type Configuration struct {
	URL               string
	Timeout           time.Duration
	RequestsPerSecond float64
}

type httpFetcher struct {
	log     *logger.L
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// New - an HTTP GET fetcher
//
// a zero timeout selects the default, zero requests per second
// disables pacing
func New(log *logger.L, conf Configuration) (Fetcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultFetchTimeout
	}

	limit := rate.Inf
	if conf.RequestsPerSecond > 0 {
		limit = rate.Limit(conf.RequestsPerSecond)
	}

	return &httpFetcher{
		log: log,
		url: conf.URL,
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// Fetch - one GET request, no retries
func (f *httpFetcher) Fetch(ctx context.Context) (price.Quote, error) {
	err := f.limiter.Wait(ctx)
	if nil != err {
		f.log.Debugf("rate limit wait: %s", err)
		return nil, fault.ErrNoResponse
	}

	request, err := http.NewRequest(http.MethodGet, f.url, nil)
	if nil != err {
		f.log.Errorf("request url: %q  error: %s", f.url, err)
		return nil, fault.ErrSendFailed
	}
	request = request.WithContext(ctx)

	response, err := f.client.Do(request)
	if nil != err {
		if nil != ctx.Err() || isTimeout(err) {
			f.log.Warnf("no response: %s", err)
			return nil, fault.ErrNoResponse
		}
		f.log.Errorf("send error: %s", err)
		return nil, fault.ErrSendFailed
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		f.log.Warnf("unexpected status: %d", response.StatusCode)
		return nil, fault.ErrBadStatus
	}

	body, err := ioutil.ReadAll(io.LimitReader(response.Body, constants.MaximumQuoteLength+1))
	if nil != err {
		f.log.Warnf("read body error: %s", err)
		return nil, fault.ErrNoResponse
	}
	if len(body) > constants.MaximumQuoteLength {
		return nil, fault.ErrResponseTooLong
	}

	f.log.Debugf("quote: %q", body)
	return price.Quote(body), nil
}

func isTimeout(err error) bool {
	e, ok := err.(net.Error)
	return ok && e.Timeout()
}
