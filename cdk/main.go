package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type SwissStackProps struct {
	awscdk.StackProps
}

// NewSwissStack deploys the tournament server as a single Lambda behind
// API Gateway. The database is external and reached through POSTGRES_DSN.
func NewSwissStack(scope constructs.Construct, id string, props *SwissStackProps) awscdk.Stack {
	var stackProps awscdk.StackProps
	if props != nil {
		stackProps = props.StackProps
	}

	stack := awscdk.NewStack(scope, &id, &stackProps)

	lambdaFn := awslambda.NewFunction(stack, jsii.String("SwissApi"), &awslambda.FunctionProps{
		Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
		Architecture: awslambda.Architecture_ARM_64(),
		Handler:      jsii.String("bootstrap"),
		Code:         awslambda.Code_FromAsset(jsii.String("../dist"), nil),
		MemorySize:   jsii.Number(256),
		Timeout:      awscdk.Duration_Seconds(jsii.Number(15)),
		Environment: &map[string]*string{
			"APP":                 jsii.String("prod"),
			"LOG_FORMAT":          jsii.String("json"),
			"POSTGRES_DSN":        jsii.String(os.Getenv("POSTGRES_DSN")),
			"ADMIN_PASSWORD_HASH": jsii.String(os.Getenv("ADMIN_PASSWORD_HASH")),
		},
	})

	api := awsapigateway.NewLambdaRestApi(stack, jsii.String("SwissApiGateway"), &awsapigateway.LambdaRestApiProps{
		Handler: lambdaFn,
	})

	awscdk.NewCfnOutput(stack, jsii.String("ApiUrl"), &awscdk.CfnOutputProps{Value: api.Url()})

	return stack
}

func main() {
	app := awscdk.NewApp(nil)
	NewSwissStack(app, "SwissStack", &SwissStackProps{})
	app.Synth(nil)
}
