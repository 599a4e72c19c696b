package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
)

// ClientInterface is the interface that defines the implementation of all the endpoints
type ClientInterface interface {
	ZKSClientInterface
}

// ClientFactoryInterface interface for the client factory
type ClientFactoryInterface interface {
	NewClient(url string) ClientInterface
}

// ClientFactory is the implementation of the zks client factory
type ClientFactory struct{}

// NewClient returns an implementation of the zks node client
func (f *ClientFactory) NewClient(url string) ClientInterface {
	return NewClient(url)
}

// Client wraps all the available endpoints of the zks server
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

// call runs method and decodes its result. found is false if the result is null
func (c *Client) call(result interface{}, method string, params ...interface{}) (found bool, err error) {
	response, err := rpc.JSONRPCCall(c.url, method, params...)
	if err != nil {
		return false, err
	}
	if response.Error != nil {
		return false, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	if len(response.Result) == 0 || string(response.Result) == "null" {
		return false, nil
	}
	return true, json.Unmarshal(response.Result, result)
}
