package operation

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createThingInput struct {
	ThingName *string
	Labels    []string
}

type createThingOutput struct {
	ThingArn *string
	Thing    *thing
	Count    int32
}

func TestParseSelect(t *testing.T) {
	in := &createThingInput{ThingName: aws.String("alpha"), Labels: []string{"x", "y"}}
	out := &createThingOutput{
		ThingArn: aws.String("arn:aws:things:alpha"),
		Thing:    &thing{Name: "alpha", Arn: aws.String("arn:aws:things:alpha")},
		Count:    3,
	}
	def := func(_ *createThingInput, out *createThingOutput) any { return out.ThingArn }

	tests := []struct {
		name string
		expr string
		def  Projection[createThingInput, createThingOutput]
		want any
	}{
		{name: "default", expr: "", def: def, want: aws.String("arn:aws:things:alpha")},
		{name: "no default", expr: "", want: out},
		{name: "whole", expr: "*", def: def, want: out},
		{name: "param", expr: "^ThingName", def: def, want: "alpha"},
		{name: "param slice", expr: "^Labels", def: def, want: []string{"x", "y"}},
		{name: "param case insensitive", expr: "^thingname", def: def, want: "alpha"},
		{name: "field", expr: "ThingArn", def: def, want: "arn:aws:things:alpha"},
		{name: "nested field", expr: "Thing.Name", def: def, want: "alpha"},
		{name: "scalar field", expr: "Count", def: def, want: int32(3)},
		{name: "surrounding space", expr: "  *  ", def: def, want: out},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, err := ParseSelect(tt.expr, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, project(in, out))
		})
	}
}

func TestParseSelect_NilIntermediateYieldsNil(t *testing.T) {
	project, err := ParseSelect[createThingInput, createThingOutput]("Thing.Name", nil)
	require.NoError(t, err)

	assert.Nil(t, project(&createThingInput{}, &createThingOutput{}))
}

func TestParseSelect_UnsetParamYieldsNil(t *testing.T) {
	project, err := ParseSelect[createThingInput, createThingOutput]("^ThingName", nil)
	require.NoError(t, err)

	assert.Nil(t, project(&createThingInput{}, &createThingOutput{}))
}

func TestParseSelect_Unknown(t *testing.T) {
	tests := []string{
		"Widgets",
		"^Widgets",
		"^",
		"Thing.Color",
		"Count.Value",
		"ThingArn..Name",
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseSelect[createThingInput, createThingOutput](expr, nil)
			assert.ErrorIs(t, err, ErrUnknownSelect)
		})
	}
}
