package api

import (
	"net/http"
)

type keyOpt struct {
	header string
	value  string
}

// Key attaches an API key header to a single call.
func Key(header, value string) *keyOpt {
	return &keyOpt{header: header, value: value}
}

func (opt *keyOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Add(opt.header, opt.value)
}

type bearerOpt struct {
	token string
}

func Bearer(token string) *bearerOpt {
	return &bearerOpt{token: token}
}

func (opt *bearerOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+opt.token)
}
