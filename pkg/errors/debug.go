package errors

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	MongoCode         int      `json:"mongo_code,omitempty"`
	MongoCodeName     string   `json:"mongo_code_name,omitempty"`
	MongoMessage      string   `json:"mongo_message,omitempty"`
	MongoLabels       []string `json:"mongo_labels,omitempty"`
	MongoDuplicateKey bool     `json:"mongo_duplicate_key,omitempty"`
	MongoTimeout      bool     `json:"mongo_timeout,omitempty"`
	MongoNetwork      bool     `json:"mongo_network,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	d.MongoDuplicateKey = mongo.IsDuplicateKeyError(err)
	d.MongoTimeout = mongo.IsTimeout(err)
	d.MongoNetwork = mongo.IsNetworkError(err)

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		d.MongoCode = int(cmdErr.Code)
		d.MongoCodeName = cmdErr.Name
		d.MongoMessage = cmdErr.Message
		d.MongoLabels = cmdErr.Labels
		return d
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		if len(writeErr.WriteErrors) > 0 {
			first := writeErr.WriteErrors[0]
			d.MongoCode = first.Code
			d.MongoMessage = first.Message
		}
		d.MongoLabels = writeErr.Labels
		return d
	}

	return d
}
