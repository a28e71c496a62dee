package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("snowflake.worker_id", 1)
	viper.SetDefault("policy.allow_self_subscription", false)
	viper.SetDefault("policy.record_repeat_watch_history", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
		return
	}
	logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())

	ConfigInfo.Server.Addr = viper.GetString("server.addr")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")

	ConfigInfo.Snowflake.WorkerID = viper.GetInt64("snowflake.worker_id")

	ConfigInfo.Policy.AllowSelfSubscription = viper.GetBool("policy.allow_self_subscription")
	ConfigInfo.Policy.RecordRepeatWatchHistory = viper.GetBool("policy.record_repeat_watch_history")

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
}
