package proxygrp

import (
	"net/url"
	"strings"

	"github.com/ardanlabs/skywallet/business/sys/validate"
)

// query holds the passthrough parameters that can be checked before the
// node sees them.
type query struct {
	Address string   `json:"address" validate:"omitempty,skyaddr"`
	Addrs   []string `json:"addrs" validate:"omitempty,dive,skyaddr"`
	Start   string   `json:"start" validate:"omitempty,number"`
	End     string   `json:"end" validate:"omitempty,number"`
	Seq     string   `json:"seq" validate:"omitempty,number"`
	Num     string   `json:"num" validate:"omitempty,number"`
	Hash    string   `json:"hash" validate:"omitempty,hexadecimal,len=64"`
	Uxid    string   `json:"uxid" validate:"omitempty,hexadecimal,len=64"`
	Txid    string   `json:"txid" validate:"omitempty,hexadecimal,len=64"`
}

// passthrough copies the allowed parameters out of the request query and
// validates them.
func passthrough(in url.Values, params []string) (url.Values, error) {
	out := url.Values{}
	var q query

	for _, name := range params {
		v := strings.TrimSpace(in.Get(name))
		if v == "" {
			continue
		}
		out.Set(name, v)

		switch name {
		case "address":
			q.Address = v
		case "addrs":
			q.Addrs = splitList(v)
			out.Set(name, strings.Join(q.Addrs, ","))
		case "start":
			q.Start = v
		case "end":
			q.End = v
		case "seq":
			q.Seq = v
		case "num":
			q.Num = v
		case "hash":
			q.Hash = v
		case "uxid":
			q.Uxid = v
		case "txid":
			q.Txid = v
		}
	}

	if err := validate.Check(q); err != nil {
		return nil, err
	}

	return out, nil
}

func splitList(s string) []string {
	var list []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
