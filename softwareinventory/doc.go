// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package softwareinventory implements both sides of the
// software-inventory relation.
//
// The Provider runs in the exporter charm and publishes where the exporter
// listens: hostname, port and model name, in the local unit's bucket of every
// software-inventory relation. The Consumer runs in a collector charm and
// reads that data back from every related exporter unit:
//
//	env, err := hookcontext.EnvironmentFromGetenv(os.Getenv)
//	...
//	hookCtx, err := hookcontext.New(hookcontext.Config{Environment: env})
//	...
//	consumer, err := softwareinventory.NewConsumer(softwareinventory.ConsumerConfig{
//		Context:      hookCtx,
//		RelationName: "my-software-inventory",
//	})
//	exporters, err := consumer.AllExporters()
//	for _, exporter := range exporters {
//		endpoint := net.JoinHostPort(exporter.Hostname, exporter.Port)
//		...
//	}
//
// The ingress address of an exporter is not published by the Provider; Juju
// adds ingress-address (or private-address on older controllers) to every
// unit's bucket and the Consumer reads it from there.
package softwareinventory
