package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/hubertat/servicemaker"

	"github.com/jurriaan/zhakit"
)

var (
	Version string
	Build   string

	config      = flag.String("config", "config.json", "path of the configuration file")
	flagInstall = flag.Bool("install", false, "Install service in os")

	kitService = servicemaker.ServiceMaker{
		User:               "zhakit",
		ServicePath:        "/etc/systemd/system/zhakit.service",
		ServiceDescription: "zhakit service: HomeKit bridge for XBee radio IO modules. github.com/jurriaan/zhakit",
		ExecDir:            "/srv/zhakit",
		ExecName:           "zhakit",
	}
)

func main() {
	log.Printf("zhakit %s started\n", Version)
	flag.Parse()

	if *flagInstall {
		err := kitService.InstallService()
		if err != nil {
			panic(err)
		} else {
			log.Println("service installed!")
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kit := &zhakit.Kit{}
	configFile, err := os.Open(*config)
	if err != nil {
		log.Fatalf("can't find/open config file (%s), will terminate. Reason: \n%v\n", *config, err)
	}
	cBuff, err := io.ReadAll(configFile)
	configFile.Close()
	if err != nil {
		log.Fatalf("failed reading config file: %v\n", err)
	}
	err = json.Unmarshal(cBuff, kit)
	if err != nil {
		log.Fatalf("failed unmarshalling json config: %v", err)
	}

	log.Println("will init zhakit devices...")
	err = kit.InitDevices(ctx)
	defer kit.Close()
	if err != nil {
		panic(err)
	}

	log.Println("will connect mqtt...")
	err = kit.ConnectMqtt(ctx)
	if err != nil {
		panic(err)
	}

	kit.PrintIoStatus(os.Stdout)

	if len(kit.StatusAddr) > 0 {
		go func() {
			log.Println(kit.ServeStatus(kit.StatusAddr))
		}()
	}

	if len(kit.HkPin) == 8 {
		log.Println("Starting with HomeKit server")
		log.Fatal(kit.StartHomeKit(ctx, Version))
	} else {
		log.Println("HomeKit not configured, disabled")
		<-ctx.Done()
	}
}
