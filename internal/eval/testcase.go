package eval

import (
	"github.com/google/uuid"

	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/trace"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
	"github.com/wikirun/zcore/internal/znode"
)

// RunTestCase runs testCase against implementation, forced as the
// implementation for its own function (spec §8). It returns the actual
// result of the call under test alongside an error: nil on pass, otherwise
// a zerr.KindTestResultInfo error carrying the actual result and wrapping
// either zerr.KindTestSuiteFailed (the validation call evaluated to false)
// or the validation call's own failure.
func (e *Evaluator) RunTestCase(testCase, implementation znode.PersistentObject) (term.Term, error) {
	implView, err := znode.ParseImplementation(implementation.Value)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "on the implementation to be tested")
	}
	functionIDText, err := implView.Function.AsString()
	if err != nil {
		return term.Term{}, zerr.Trace(zerr.Wrap(err), "Inside Z14K1 in the implementation to test")
	}
	functionID, err := zid.Parse(functionIDText)
	if err != nil {
		return term.Term{}, zerr.Trace(zerr.ParseIdentifier(err), "Inside Z14K1 in the implementation to test")
	}

	opts := Options{ForceImpl: map[zid.ID]zid.ID{functionID: implementation.ID}}

	testView, err := znode.ParseTestCase(testCase.Value)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "on the test case, inside Z2K2")
	}

	testCaseProv := trace.Persistent(testCase.ID)
	callProv := testCaseProv.ToOther([]zid.ID{zconfig.Z2K2, zconfig.Z20K2})

	actual, err := e.RunFunctionCall(testView.Call, callProv, opts)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "running function to test")
	}

	if err := e.runValidation(testView.ResultValidation, actual); err != nil {
		return actual, zerr.TestResultInfo(actual, err)
	}
	return actual, nil
}

// runValidation splices actual into the validator call's first argument
// key and evaluates it, matching the original implementation's
// "validator is a function call, replace first parameter with the
// result" comment.
func (e *Evaluator) runValidation(validator, actual term.Term) error {
	validatorFnTerm, err := validator.MapGet(zconfig.Z7K1)
	if err != nil {
		return zerr.Trace(err, "on the validator")
	}
	validatorFnText, err := validatorFnTerm.AsString()
	if err != nil {
		return zerr.Trace(zerr.Wrap(err), "on the validator")
	}
	validatorFnID, err := zid.Parse(validatorFnText)
	if err != nil {
		return zerr.Trace(zerr.ParseIdentifier(err), "on the validator")
	}
	z, _ := validatorFnID.Z()
	insertedKey, err := zid.FromParts(z, 1)
	if err != nil {
		return zerr.Trace(err, "on the validator")
	}

	validatorMap, err := validator.AsMap()
	if err != nil {
		return zerr.Wrap(err)
	}
	modifiedMap := make(map[zid.ID]term.Term, len(validatorMap)+1)
	for k, v := range validatorMap {
		modifiedMap[k] = v
	}
	modifiedMap[insertedKey] = actual
	modifiedValidator := term.Map(modifiedMap)

	result, err := e.RunFunctionCall(modifiedValidator, trace.Runtime(uuid.New()), Options{})
	if err != nil {
		return zerr.Trace(err, "running the validator function")
	}

	passed, err := parseBoolean(result)
	if err != nil {
		return zerr.Trace(err, "parsing the validator result boolean")
	}
	if !passed {
		return zerr.TestSuiteFailed(actual)
	}
	return nil
}
