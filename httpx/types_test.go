package httpx

import (
	"net/http"
	"testing"
)

func TestResponse_Validate(t *testing.T) {
	testCases := []struct {
		testCaseName string
		input        *Response
		errExpected  bool
	}{
		{
			testCaseName: "All required values are present",
			input: &Response{
				StatusCode: http.StatusOK,
			},
			errExpected: false,
		},
		{
			testCaseName: "Status code not present",
			input:        &Response{},
			errExpected:  true,
		},
		{
			testCaseName: "Status code out of range",
			input: &Response{
				StatusCode: 1200,
			},
			errExpected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testCaseName, func(t *testing.T) {
			err := tc.input.Validate()
			if (err != nil) != tc.errExpected {
				t.Errorf("expected error %v but got %v", tc.errExpected, err)
			}
		})
	}
}

func TestResponse_IsSuccess(t *testing.T) {
	for code, expected := range map[int]bool{199: false, 200: true, 204: true, 299: true, 300: false, 404: false} {
		if got := (&Response{StatusCode: code}).IsSuccess(); got != expected {
			t.Errorf("status %d: expected %v but got %v", code, expected, got)
		}
	}
}

func TestRequest_Validate(t *testing.T) {
	testCases := []struct {
		testCaseName string
		input        *Request
		errExpected  bool
	}{
		{
			testCaseName: "All required values are present",
			input: &Request{
				Method: http.MethodGet,
				URL:    "https://example.com",
			},
			errExpected: false,
		},
		{
			testCaseName: "URL not present",
			input: &Request{
				Method: http.MethodGet,
			},
			errExpected: true,
		},
		{
			testCaseName: "URL not absolute",
			input: &Request{
				Method: http.MethodGet,
				URL:    "not a url",
			},
			errExpected: true,
		},
		{
			testCaseName: "Method not present",
			input: &Request{
				URL: "https://example.com",
			},
			errExpected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testCaseName, func(t *testing.T) {
			err := tc.input.Validate()
			if (err != nil) != tc.errExpected {
				t.Errorf("expected error %v but got %v", tc.errExpected, err)
			}
		})
	}
}
