package ids

// datatypeBase maps every IFC defined type usable as a property datatype to
// the XSD base type of its value restrictions. An empty base means the type
// has no XSD representation.
var datatypeBase = map[string]string{
	"IFCABSORBEDDOSEMEASURE":                        "double",
	"IFCACCELERATIONMEASURE":                        "double",
	"IFCACTIONREQUESTTYPEENUM":                      "string",
	"IFCACTIONSOURCETYPEENUM":                       "string",
	"IFCACTIONTYPEENUM":                             "string",
	"IFCACTUATORTYPEENUM":                           "string",
	"IFCADDRESSTYPEENUM":                            "string",
	"IFCAIRTERMINALBOXTYPEENUM":                     "string",
	"IFCAIRTERMINALTYPEENUM":                        "string",
	"IFCAIRTOAIRHEATRECOVERYTYPEENUM":               "string",
	"IFCALARMTYPEENUM":                              "string",
	"IFCALIGNMENTCANTSEGMENTTYPEENUM":               "string",
	"IFCALIGNMENTHORIZONTALSEGMENTTYPEENUM":         "string",
	"IFCALIGNMENTTYPEENUM":                          "string",
	"IFCALIGNMENTVERTICALSEGMENTTYPEENUM":           "string",
	"IFCAMOUNTOFSUBSTANCEMEASURE":                   "double",
	"IFCANALYSISMODELTYPEENUM":                      "string",
	"IFCANALYSISTHEORYTYPEENUM":                     "string",
	"IFCANGULARVELOCITYMEASURE":                     "double",
	"IFCANNOTATIONTYPEENUM":                         "string",
	"IFCAREADENSITYMEASURE":                         "double",
	"IFCAREAMEASURE":                                "double",
	"IFCARITHMETICOPERATORENUM":                     "string",
	"IFCASSEMBLYPLACEENUM":                          "string",
	"IFCAUDIOVISUALAPPLIANCETYPEENUM":               "string",
	"IFCBEAMTYPEENUM":                               "string",
	"IFCBEARINGTYPEENUM":                            "string",
	"IFCBENCHMARKENUM":                              "string",
	"IFCBINARY":                                     "",
	"IFCBOILERTYPEENUM":                             "string",
	"IFCBOOLEAN":                                    "boolean",
	"IFCBOXALIGNMENT":                               "string",
	"IFCBRIDGEPARTTYPEENUM":                         "string",
	"IFCBRIDGETYPEENUM":                             "string",
	"IFCBUILDINGELEMENTPARTTYPEENUM":                "string",
	"IFCBUILDINGELEMENTPROXYTYPEENUM":               "string",
	"IFCBUILDINGSYSTEMTYPEENUM":                     "string",
	"IFCBUILTSYSTEMTYPEENUM":                        "string",
	"IFCBURNERTYPEENUM":                             "string",
	"IFCCABLECARRIERFITTINGTYPEENUM":                "string",
	"IFCCABLECARRIERSEGMENTTYPEENUM":                "string",
	"IFCCABLEFITTINGTYPEENUM":                       "string",
	"IFCCABLESEGMENTTYPEENUM":                       "string",
	"IFCCAISSONFOUNDATIONTYPEENUM":                  "string",
	"IFCCARDINALPOINTREFERENCE":                     "integer",
	"IFCCHANGEACTIONENUM":                           "string",
	"IFCCHILLERTYPEENUM":                            "string",
	"IFCCHIMNEYTYPEENUM":                            "string",
	"IFCCOILTYPEENUM":                               "string",
	"IFCCOLUMNTYPEENUM":                             "string",
	"IFCCOMMUNICATIONSAPPLIANCETYPEENUM":            "string",
	"IFCCOMPLEXPROPERTYTEMPLATETYPEENUM":            "string",
	"IFCCOMPRESSORTYPEENUM":                         "string",
	"IFCCONDENSERTYPEENUM":                          "string",
	"IFCCONNECTIONTYPEENUM":                         "string",
	"IFCCONSTRAINTENUM":                             "string",
	"IFCCONSTRUCTIONEQUIPMENTRESOURCETYPEENUM":      "string",
	"IFCCONSTRUCTIONMATERIALRESOURCETYPEENUM":       "string",
	"IFCCONSTRUCTIONPRODUCTRESOURCETYPEENUM":        "string",
	"IFCCONTEXTDEPENDENTMEASURE":                    "double",
	"IFCCONTROLLERTYPEENUM":                         "string",
	"IFCCONVEYORSEGMENTTYPEENUM":                    "string",
	"IFCCOOLEDBEAMTYPEENUM":                         "string",
	"IFCCOOLINGTOWERTYPEENUM":                       "string",
	"IFCCOSTITEMTYPEENUM":                           "string",
	"IFCCOSTSCHEDULETYPEENUM":                       "string",
	"IFCCOUNTMEASURE":                               "integer",
	"IFCCOURSETYPEENUM":                             "string",
	"IFCCOVERINGTYPEENUM":                           "string",
	"IFCCREWRESOURCETYPEENUM":                       "string",
	"IFCCURRENCYENUM":                               "string",
	"IFCCURTAINWALLTYPEENUM":                        "string",
	"IFCCURVATUREMEASURE":                           "double",
	"IFCCURVEINTERPOLATIONENUM":                     "string",
	"IFCDAMPERTYPEENUM":                             "string",
	"IFCDATAORIGINENUM":                             "string",
	"IFCDATE":                                       "date",
	"IFCDATETIME":                                   "dateTime",
	"IFCDAYINMONTHNUMBER":                           "integer",
	"IFCDAYINWEEKNUMBER":                            "integer",
	"IFCDAYLIGHTSAVINGHOUR":                         "integer",
	"IFCDERIVEDUNITENUM":                            "string",
	"IFCDESCRIPTIVEMEASURE":                         "string",
	"IFCDIMENSIONCOUNT":                             "integer",
	"IFCDIRECTIONSENSEENUM":                         "string",
	"IFCDISCRETEACCESSORYTYPEENUM":                  "string",
	"IFCDISTRIBUTIONBOARDTYPEENUM":                  "string",
	"IFCDISTRIBUTIONCHAMBERELEMENTTYPEENUM":         "string",
	"IFCDISTRIBUTIONPORTTYPEENUM":                   "string",
	"IFCDISTRIBUTIONSYSTEMENUM":                     "string",
	"IFCDOCUMENTCONFIDENTIALITYENUM":                "string",
	"IFCDOCUMENTSTATUSENUM":                         "string",
	"IFCDOORPANELOPERATIONENUM":                     "string",
	"IFCDOORPANELPOSITIONENUM":                      "string",
	"IFCDOORSTYLECONSTRUCTIONENUM":                  "string",
	"IFCDOORSTYLEOPERATIONENUM":                     "string",
	"IFCDOORTYPEENUM":                               "string",
	"IFCDOORTYPEOPERATIONENUM":                      "string",
	"IFCDOSEEQUIVALENTMEASURE":                      "double",
	"IFCDUCTFITTINGTYPEENUM":                        "string",
	"IFCDUCTSEGMENTTYPEENUM":                        "string",
	"IFCDUCTSILENCERTYPEENUM":                       "string",
	"IFCDURATION":                                   "duration",
	"IFCDYNAMICVISCOSITYMEASURE":                    "double",
	"IFCEARTHWORKSCUTTYPEENUM":                      "string",
	"IFCEARTHWORKSFILLTYPEENUM":                     "string",
	"IFCELECTRICAPPLIANCETYPEENUM":                  "string",
	"IFCELECTRICCAPACITANCEMEASURE":                 "double",
	"IFCELECTRICCHARGEMEASURE":                      "double",
	"IFCELECTRICCONDUCTANCEMEASURE":                 "double",
	"IFCELECTRICCURRENTENUM":                        "string",
	"IFCELECTRICCURRENTMEASURE":                     "double",
	"IFCELECTRICDISTRIBUTIONBOARDTYPEENUM":          "string",
	"IFCELECTRICDISTRIBUTIONPOINTFUNCTIONENUM":      "string",
	"IFCELECTRICFLOWSTORAGEDEVICETYPEENUM":          "string",
	"IFCELECTRICFLOWTREATMENTDEVICETYPEENUM":        "string",
	"IFCELECTRICGENERATORTYPEENUM":                  "string",
	"IFCELECTRICHEATERTYPEENUM":                     "string",
	"IFCELECTRICMOTORTYPEENUM":                      "string",
	"IFCELECTRICRESISTANCEMEASURE":                  "double",
	"IFCELECTRICTIMECONTROLTYPEENUM":                "string",
	"IFCELECTRICVOLTAGEMEASURE":                     "double",
	"IFCELEMENTASSEMBLYTYPEENUM":                    "string",
	"IFCELEMENTCOMPOSITIONENUM":                     "string",
	"IFCENERGYMEASURE":                              "double",
	"IFCENERGYSEQUENCEENUM":                         "string",
	"IFCENGINETYPEENUM":                             "string",
	"IFCENVIRONMENTALIMPACTCATEGORYENUM":            "string",
	"IFCEVAPORATIVECOOLERTYPEENUM":                  "string",
	"IFCEVAPORATORTYPEENUM":                         "string",
	"IFCEVENTTRIGGERTYPEENUM":                       "string",
	"IFCEVENTTYPEENUM":                              "string",
	"IFCEXTERNALSPATIALELEMENTTYPEENUM":             "string",
	"IFCFACILITYPARTCOMMONTYPEENUM":                 "string",
	"IFCFACILITYUSAGEENUM":                          "string",
	"IFCFANTYPEENUM":                                "string",
	"IFCFASTENERTYPEENUM":                           "string",
	"IFCFILTERTYPEENUM":                             "string",
	"IFCFIRESUPPRESSIONTERMINALTYPEENUM":            "string",
	"IFCFLOWDIRECTIONENUM":                          "string",
	"IFCFLOWINSTRUMENTTYPEENUM":                     "string",
	"IFCFLOWMETERTYPEENUM":                          "string",
	"IFCFONTSTYLE":                                  "string",
	"IFCFONTVARIANT":                                "string",
	"IFCFONTWEIGHT":                                 "string",
	"IFCFOOTINGTYPEENUM":                            "string",
	"IFCFORCEMEASURE":                               "double",
	"IFCFREQUENCYMEASURE":                           "double",
	"IFCFURNITURETYPEENUM":                          "string",
	"IFCGASTERMINALTYPEENUM":                        "string",
	"IFCGEOGRAPHICELEMENTTYPEENUM":                  "string",
	"IFCGEOMETRICPROJECTIONENUM":                    "string",
	"IFCGEOTECHNICALSTRATUMTYPEENUM":                "string",
	"IFCGLOBALLYUNIQUEID":                           "string",
	"IFCGLOBALORLOCALENUM":                          "string",
	"IFCGRIDTYPEENUM":                               "string",
	"IFCHEATEXCHANGERTYPEENUM":                      "string",
	"IFCHEATFLUXDENSITYMEASURE":                     "double",
	"IFCHEATINGVALUEMEASURE":                        "double",
	"IFCHOURINDAY":                                  "integer",
	"IFCHUMIDIFIERTYPEENUM":                         "string",
	"IFCIDENTIFIER":                                 "string",
	"IFCILLUMINANCEMEASURE":                         "double",
	"IFCIMPACTPROTECTIONDEVICETYPEENUM":             "string",
	"IFCINDUCTANCEMEASURE":                          "double",
	"IFCINTEGER":                                    "integer",
	"IFCINTEGERCOUNTRATEMEASURE":                    "integer",
	"IFCINTERCEPTORTYPEENUM":                        "string",
	"IFCINTERNALOREXTERNALENUM":                     "string",
	"IFCINVENTORYTYPEENUM":                          "string",
	"IFCIONCONCENTRATIONMEASURE":                    "double",
	"IFCISOTHERMALMOISTURECAPACITYMEASURE":          "double",
	"IFCJUNCTIONBOXTYPEENUM":                        "string",
	"IFCKERBTYPEENUM":                               "string",
	"IFCKINEMATICVISCOSITYMEASURE":                  "double",
	"IFCLABEL":                                      "string",
	"IFCLABORRESOURCETYPEENUM":                      "string",
	"IFCLAMPTYPEENUM":                               "string",
	"IFCLANGUAGEID":                                 "string",
	"IFCLAYERSETDIRECTIONENUM":                      "string",
	"IFCLENGTHMEASURE":                              "double",
	"IFCLIGHTDISTRIBUTIONCURVEENUM":                 "string",
	"IFCLIGHTEMISSIONSOURCEENUM":                    "string",
	"IFCLIGHTFIXTURETYPEENUM":                       "string",
	"IFCLINEARFORCEMEASURE":                         "double",
	"IFCLINEARMOMENTMEASURE":                        "double",
	"IFCLINEARSTIFFNESSMEASURE":                     "double",
	"IFCLINEARVELOCITYMEASURE":                      "double",
	"IFCLIQUIDTERMINALTYPEENUM":                     "string",
	"IFCLOADGROUPTYPEENUM":                          "string",
	"IFCLOGICAL":                                    "string",
	"IFCLOGICALOPERATORENUM":                        "string",
	"IFCLUMINOUSFLUXMEASURE":                        "double",
	"IFCLUMINOUSINTENSITYDISTRIBUTIONMEASURE":       "double",
	"IFCLUMINOUSINTENSITYMEASURE":                   "double",
	"IFCMAGNETICFLUXDENSITYMEASURE":                 "double",
	"IFCMAGNETICFLUXMEASURE":                        "double",
	"IFCMARINEFACILITYTYPEENUM":                     "string",
	"IFCMARINEPARTTYPEENUM":                         "string",
	"IFCMASSDENSITYMEASURE":                         "double",
	"IFCMASSFLOWRATEMEASURE":                        "double",
	"IFCMASSMEASURE":                                "double",
	"IFCMASSPERLENGTHMEASURE":                       "double",
	"IFCMECHANICALFASTENERTYPEENUM":                 "string",
	"IFCMEDICALDEVICETYPEENUM":                      "string",
	"IFCMEMBERTYPEENUM":                             "string",
	"IFCMINUTEINHOUR":                               "integer",
	"IFCMOBILETELECOMMUNICATIONSAPPLIANCETYPEENUM":  "string",
	"IFCMODULUSOFELASTICITYMEASURE":                 "double",
	"IFCMODULUSOFLINEARSUBGRADEREACTIONMEASURE":     "double",
	"IFCMODULUSOFROTATIONALSUBGRADEREACTIONMEASURE": "double",
	"IFCMODULUSOFSUBGRADEREACTIONMEASURE":           "double",
	"IFCMOISTUREDIFFUSIVITYMEASURE":                 "double",
	"IFCMOLECULARWEIGHTMEASURE":                     "double",
	"IFCMOMENTOFINERTIAMEASURE":                     "double",
	"IFCMONETARYMEASURE":                            "double",
	"IFCMONTHINYEARNUMBER":                          "integer",
	"IFCMOORINGDEVICETYPEENUM":                      "string",
	"IFCMOTORCONNECTIONTYPEENUM":                    "string",
	"IFCNAVIGATIONELEMENTTYPEENUM":                  "string",
	"IFCNONNEGATIVELENGTHMEASURE":                   "double",
	"IFCNORMALISEDRATIOMEASURE":                     "double",
	"IFCNULLSTYLE":                                  "string",
	"IFCNULLSTYLEENUM":                              "string",
	"IFCNUMERICMEASURE":                             "double",
	"IFCOBJECTIVEENUM":                              "string",
	"IFCOBJECTTYPEENUM":                             "string",
	"IFCOCCUPANTTYPEENUM":                           "string",
	"IFCOPENINGELEMENTTYPEENUM":                     "string",
	"IFCOUTLETTYPEENUM":                             "string",
	"IFCPARAMETERVALUE":                             "double",
	"IFCPAVEMENTTYPEENUM":                           "string",
	"IFCPERFORMANCEHISTORYTYPEENUM":                 "string",
	"IFCPERMEABLECOVERINGOPERATIONENUM":             "string",
	"IFCPERMITTYPEENUM":                             "string",
	"IFCPHMEASURE":                                  "double",
	"IFCPHYSICALORVIRTUALENUM":                      "string",
	"IFCPILECONSTRUCTIONENUM":                       "string",
	"IFCPILETYPEENUM":                               "string",
	"IFCPIPEFITTINGTYPEENUM":                        "string",
	"IFCPIPESEGMENTTYPEENUM":                        "string",
	"IFCPLANARFORCEMEASURE":                         "double",
	"IFCPLANEANGLEMEASURE":                          "double",
	"IFCPLATETYPEENUM":                              "string",
	"IFCPOSITIVEINTEGER":                            "integer",
	"IFCPOSITIVELENGTHMEASURE":                      "double",
	"IFCPOSITIVEPLANEANGLEMEASURE":                  "double",
	"IFCPOSITIVERATIOMEASURE":                       "double",
	"IFCPOWERMEASURE":                               "double",
	"IFCPRESENTABLETEXT":                            "string",
	"IFCPRESSUREMEASURE":                            "double",
	"IFCPROCEDURETYPEENUM":                          "string",
	"IFCPROFILETYPEENUM":                            "string",
	"IFCPROJECTEDORTRUELENGTHENUM":                  "string",
	"IFCPROJECTIONELEMENTTYPEENUM":                  "string",
	"IFCPROJECTORDERRECORDTYPEENUM":                 "string",
	"IFCPROJECTORDERTYPEENUM":                       "string",
	"IFCPROPERTYSETTEMPLATETYPEENUM":                "string",
	"IFCPROPERTYSOURCEENUM":                         "string",
	"IFCPROTECTIVEDEVICETRIPPINGUNITTYPEENUM":       "string",
	"IFCPROTECTIVEDEVICETYPEENUM":                   "string",
	"IFCPUMPTYPEENUM":                               "string",
	"IFCRADIOACTIVITYMEASURE":                       "double",
	"IFCRAILINGTYPEENUM":                            "string",
	"IFCRAILTYPEENUM":                               "string",
	"IFCRAILWAYPARTTYPEENUM":                        "string",
	"IFCRAILWAYTYPEENUM":                            "string",
	"IFCRAMPFLIGHTTYPEENUM":                         "string",
	"IFCRAMPTYPEENUM":                               "string",
	"IFCRATIOMEASURE":                               "double",
	"IFCREAL":                                       "double",
	"IFCRECURRENCETYPEENUM":                         "string",
	"IFCREFERENTTYPEENUM":                           "string",
	"IFCREFLECTANCEMETHODENUM":                      "string",
	"IFCREINFORCEDSOILTYPEENUM":                     "string",
	"IFCREINFORCINGBARROLEENUM":                     "string",
	"IFCREINFORCINGBARSURFACEENUM":                  "string",
	"IFCREINFORCINGBARTYPEENUM":                     "string",
	"IFCREINFORCINGMESHTYPEENUM":                    "string",
	"IFCRESOURCECONSUMPTIONENUM":                    "string",
	"IFCRIBPLATEDIRECTIONENUM":                      "string",
	"IFCROADPARTTYPEENUM":                           "string",
	"IFCROADTYPEENUM":                               "string",
	"IFCROLEENUM":                                   "string",
	"IFCROOFTYPEENUM":                               "string",
	"IFCROTATIONALFREQUENCYMEASURE":                 "double",
	"IFCROTATIONALMASSMEASURE":                      "double",
	"IFCROTATIONALSTIFFNESSMEASURE":                 "double",
	"IFCSANITARYTERMINALTYPEENUM":                   "string",
	"IFCSECONDINMINUTE":                             "double",
	"IFCSECTIONALAREAINTEGRALMEASURE":               "double",
	"IFCSECTIONMODULUSMEASURE":                      "double",
	"IFCSECTIONTYPEENUM":                            "string",
	"IFCSENSORTYPEENUM":                             "string",
	"IFCSEQUENCEENUM":                               "string",
	"IFCSERVICELIFEFACTORTYPEENUM":                  "string",
	"IFCSERVICELIFETYPEENUM":                        "string",
	"IFCSHADINGDEVICETYPEENUM":                      "string",
	"IFCSHEARMODULUSMEASURE":                        "double",
	"IFCSIGNALTYPEENUM":                             "string",
	"IFCSIGNTYPEENUM":                               "string",
	"IFCSIMPLEPROPERTYTEMPLATETYPEENUM":             "string",
	"IFCSLABTYPEENUM":                               "string",
	"IFCSOLARDEVICETYPEENUM":                        "string",
	"IFCSOLIDANGLEMEASURE":                          "double",
	"IFCSOUNDPOWERLEVELMEASURE":                     "double",
	"IFCSOUNDPOWERMEASURE":                          "double",
	"IFCSOUNDPRESSURELEVELMEASURE":                  "double",
	"IFCSOUNDPRESSUREMEASURE":                       "double",
	"IFCSOUNDSCALEENUM":                             "string",
	"IFCSPACEHEATERTYPEENUM":                        "string",
	"IFCSPACETYPEENUM":                              "string",
	"IFCSPATIALZONETYPEENUM":                        "string",
	"IFCSPECIFICHEATCAPACITYMEASURE":                "double",
	"IFCSPECULAREXPONENT":                           "double",
	"IFCSPECULARROUGHNESS":                          "double",
	"IFCSTACKTERMINALTYPEENUM":                      "string",
	"IFCSTAIRFLIGHTTYPEENUM":                        "string",
	"IFCSTAIRTYPEENUM":                              "string",
	"IFCSTATEENUM":                                  "string",
	"IFCSTRIPPEDOPTIONAL":                           "boolean",
	"IFCSTRUCTURALCURVEACTIVITYTYPEENUM":            "string",
	"IFCSTRUCTURALCURVEMEMBERTYPEENUM":              "string",
	"IFCSTRUCTURALCURVETYPEENUM":                    "string",
	"IFCSTRUCTURALSURFACEACTIVITYTYPEENUM":          "string",
	"IFCSTRUCTURALSURFACEMEMBERTYPEENUM":            "string",
	"IFCSTRUCTURALSURFACETYPEENUM":                  "string",
	"IFCSUBCONTRACTRESOURCETYPEENUM":                "string",
	"IFCSURFACEFEATURETYPEENUM":                     "string",
	"IFCSURFACETEXTUREENUM":                         "string",
	"IFCSWITCHINGDEVICETYPEENUM":                    "string",
	"IFCSYSTEMFURNITUREELEMENTTYPEENUM":             "string",
	"IFCTANKTYPEENUM":                               "string",
	"IFCTASKDURATIONENUM":                           "string",
	"IFCTASKTYPEENUM":                               "string",
	"IFCTEMPERATUREGRADIENTMEASURE":                 "double",
	"IFCTEMPERATURERATEOFCHANGEMEASURE":             "double",
	"IFCTENDONANCHORTYPEENUM":                       "string",
	"IFCTENDONCONDUITTYPEENUM":                      "string",
	"IFCTENDONTYPEENUM":                             "string",
	"IFCTEXT":                                       "string",
	"IFCTEXTALIGNMENT":                              "string",
	"IFCTEXTDECORATION":                             "string",
	"IFCTEXTFONTNAME":                               "string",
	"IFCTEXTTRANSFORMATION":                         "string",
	"IFCTHERMALADMITTANCEMEASURE":                   "double",
	"IFCTHERMALCONDUCTIVITYMEASURE":                 "double",
	"IFCTHERMALEXPANSIONCOEFFICIENTMEASURE":         "double",
	"IFCTHERMALLOADSOURCEENUM":                      "string",
	"IFCTHERMALLOADTYPEENUM":                        "string",
	"IFCTHERMALRESISTANCEMEASURE":                   "double",
	"IFCTHERMALTRANSMITTANCEMEASURE":                "double",
	"IFCTHERMODYNAMICTEMPERATUREMEASURE":            "double",
	"IFCTIME":                                       "time",
	"IFCTIMEMEASURE":                                "double",
	"IFCTIMESERIESDATATYPEENUM":                     "string",
	"IFCTIMESERIESSCHEDULETYPEENUM":                 "string",
	"IFCTIMESTAMP":                                  "integer",
	"IFCTORQUEMEASURE":                              "double",
	"IFCTRACKELEMENTTYPEENUM":                       "string",
	"IFCTRANSFORMERTYPEENUM":                        "string",
	"IFCTRANSPORTELEMENTTYPEENUM":                   "string",
	"IFCTUBEBUNDLETYPEENUM":                         "string",
	"IFCUNITARYCONTROLELEMENTTYPEENUM":              "string",
	"IFCUNITARYEQUIPMENTTYPEENUM":                   "string",
	"IFCUNITENUM":                                   "string",
	"IFCURIREFERENCE":                               "string",
	"IFCVALVETYPEENUM":                              "string",
	"IFCVAPORPERMEABILITYMEASURE":                   "double",
	"IFCVEHICLETYPEENUM":                            "string",
	"IFCVIBRATIONDAMPERTYPEENUM":                    "string",
	"IFCVIBRATIONISOLATORTYPEENUM":                  "string",
	"IFCVIRTUALELEMENTTYPEENUM":                     "string",
	"IFCVOIDINGFEATURETYPEENUM":                     "string",
	"IFCVOLUMEMEASURE":                              "double",
	"IFCVOLUMETRICFLOWRATEMEASURE":                  "double",
	"IFCWALLTYPEENUM":                               "string",
	"IFCWARPINGCONSTANTMEASURE":                     "double",
	"IFCWARPINGMOMENTMEASURE":                       "double",
	"IFCWASTETERMINALTYPEENUM":                      "string",
	"IFCWELLKNOWNTEXTLITERAL":                       "string",
	"IFCWINDOWPANELOPERATIONENUM":                   "string",
	"IFCWINDOWPANELPOSITIONENUM":                    "string",
	"IFCWINDOWSTYLECONSTRUCTIONENUM":                "string",
	"IFCWINDOWSTYLEOPERATIONENUM":                   "string",
	"IFCWINDOWTYPEENUM":                             "string",
	"IFCWINDOWTYPEPARTITIONINGENUM":                 "string",
	"IFCWORKCALENDARTYPEENUM":                       "string",
	"IFCWORKCONTROLTYPEENUM":                        "string",
	"IFCWORKPLANTYPEENUM":                           "string",
	"IFCWORKSCHEDULETYPEENUM":                       "string",
	"IFCYEARNUMBER":                                 "integer",
}
