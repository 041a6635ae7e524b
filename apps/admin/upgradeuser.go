package main

import (
	"context"
	"time"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/user"
)

// upgradeUser moves an existing user to the pro plan.
func (cli *commandLine) upgradeUser(email string) error {
	ctx := context.Background()
	email = core.CleanString(email, true /* lower */)

	usr, err := cli.usrRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if usr.IsPro() {
		return nil
	}
	usr.Plan = user.PlanPro
	usr.UpdatedAt = time.Now().UTC()
	_, err = cli.usrRepo.UpdateUser(ctx, usr)
	return err
}
