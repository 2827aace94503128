package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
)

func postJson(path string, in, out any) error {
	body, err := sonic.Marshal(in)
	if err != nil {
		return err
	}

	resp, err := http.Post(*ServerAddress+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func getJson(path string, query url.Values, out any) error {
	resp, err := http.Get(*ServerAddress + path + "?" + query.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(data))
	}

	return sonic.Unmarshal(data, out)
}

func NewSession() (state SessionState, err error) {
	err = postJson("/session/new", struct{}{}, &state)
	return
}

func ResetSession(uid string) (state SessionState, err error) {
	err = postJson("/session/reset", ResetSessionRequest{SessionUid: uid}, &state)
	return
}

func SubmitMove(uid string, e Edge) (res SubmitMoveResponse, err error) {
	err = postJson("/session/move", SubmitMoveRequest{SessionUid: uid, Edge: e}, &res)
	return
}

func QueryState(uid string) (state SessionState, err error) {
	err = getJson("/session/state", url.Values{"uid": {uid}}, &state)
	return
}

func LegalMoves(uid string) (legal LegalMovesResponse, err error) {
	err = getJson("/session/legal", url.Values{"uid": {uid}}, &legal)
	return
}
