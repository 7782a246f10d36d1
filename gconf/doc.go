/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration entity stored under the "_c:"
prefix followed by the extension name. Configuration is loaded from the
genesis file "conf" section and validated before it is saved. There is no
message that updates a configuration once the chain is running.

Not being able to get a configuration value is a critical condition for the
application and there is no recovery path for the client.
*/
package gconf
